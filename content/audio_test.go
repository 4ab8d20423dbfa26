package main

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trzmielit/content/config"
)

// writeWAV 写入 rate Hz、单声道、16 位、时长 1 秒的静音 WAV
func writeWAV(t *testing.T, path string, rate int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	const (
		channels      = 1
		bitsPerSample = 16
	)
	data := make([]byte, rate*channels*bitsPerSample/8)
	var b []byte
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(36+len(data)))
	b = append(b, "WAVE"...)
	b = append(b, "fmt "...)
	b = binary.LittleEndian.AppendUint32(b, 16)
	b = binary.LittleEndian.AppendUint16(b, 1)
	b = binary.LittleEndian.AppendUint16(b, channels)
	b = binary.LittleEndian.AppendUint32(b, uint32(rate))
	b = binary.LittleEndian.AppendUint32(b, uint32(rate*channels*bitsPerSample/8))
	b = binary.LittleEndian.AppendUint16(b, channels*bitsPerSample/8)
	b = binary.LittleEndian.AppendUint16(b, bitsPerSample)
	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, data...)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSoundResamples(t *testing.T) {
	// 输出为 16 位立体声，每帧 4 字节
	want := sampleRate * 4
	for _, rate := range []int{44100, 48000, 22050} {
		path := filepath.Join(t.TempDir(), "sound.wav")
		writeWAV(t, path, rate)
		pcm, err := loadSound(path)
		if err != nil {
			t.Fatalf("%d Hz: unexpected error: %v", rate, err)
		}
		if diff := len(pcm) - want; diff < -want/100 || diff > want/100 {
			t.Errorf("%d Hz: one second decodes to %d bytes, want about %d", rate, len(pcm), want)
		}
	}
}

func TestLoadSoundsMissing(t *testing.T) {
	_, err := loadSounds(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "load sound \"sounds/") {
		t.Errorf("err = %q does not name the sound", err)
	}
}

func TestLoadSoundsCorrupt(t *testing.T) {
	dir := t.TempDir()
	for _, p := range soundPaths {
		writeWAV(t, filepath.Join(dir, p), sampleRate)
	}
	if err := os.WriteFile(filepath.Join(dir, config.JumpSound), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := loadSounds(dir)
	if err == nil || !strings.Contains(err.Error(), config.JumpSound) {
		t.Errorf("err = %v, want an error naming %s", err, config.JumpSound)
	}
}

func TestLoadSounds(t *testing.T) {
	dir := t.TempDir()
	for _, p := range soundPaths {
		writeWAV(t, filepath.Join(dir, p), 44100)
	}
	sounds, err := loadSounds(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, pcm := range sounds {
		if len(pcm) == 0 {
			t.Errorf("sound %d is empty", id)
		}
	}
}
