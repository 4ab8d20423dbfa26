package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"trzmielit/content/config"
)

const sampleRate = 48000

// SoundID 已加载的音效
type SoundID int

const (
	SoundMusic SoundID = iota
	SoundClick
	SoundHover
	SoundJump
	soundCount
)

var soundPaths = [soundCount]string{
	SoundMusic: config.MusicSound,
	SoundClick: config.ClickSound,
	SoundHover: config.HoverSound,
	SoundJump:  config.JumpSound,
}

// Mixer 按通道播放音效，每个通道同一时间只播放一个声音
type Mixer interface {
	Play(ch config.Channel, id SoundID, loop bool)
	Stop(ch config.Channel)
	SetVolume(ch config.Channel, volume float64)
}

type channel struct {
	player *audio.Player
	volume float64
}

type AudioMixer struct {
	ctx      *audio.Context
	sounds   [soundCount][]byte
	channels [config.ChannelCount]channel
}

// loadSound 解码 WAV 文件为 PCM 数据，并重采样到 sampleRate
func loadSound(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(s)
}

// loadSounds 读取全部音效，任何一个缺失都会返回错误
func loadSounds(assetDir string) ([soundCount][]byte, error) {
	var sounds [soundCount][]byte
	for id, p := range soundPaths {
		pcm, err := loadSound(filepath.Join(assetDir, p))
		if err != nil {
			return sounds, fmt.Errorf("load sound %q: %w", p, err)
		}
		sounds[id] = pcm
	}
	return sounds, nil
}

func NewMixer(assetDir string) (*AudioMixer, error) {
	sounds, err := loadSounds(assetDir)
	if err != nil {
		return nil, err
	}
	m := &AudioMixer{ctx: audioContext(), sounds: sounds}
	for i := range m.channels {
		m.channels[i].volume = 1
	}
	return m, nil
}

func audioContext() *audio.Context {
	if c := audio.CurrentContext(); c != nil {
		return c
	}
	return audio.NewContext(sampleRate)
}

func (m *AudioMixer) Play(ch config.Channel, id SoundID, loop bool) {
	m.Stop(ch)
	pcm := m.sounds[id]
	var (
		p   *audio.Player
		err error
	)
	if loop {
		p, err = m.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	} else {
		p = m.ctx.NewPlayerFromBytes(pcm)
	}
	if err != nil {
		log.Printf("play sound %d on channel %d: %v", id, ch, err)
		return
	}
	p.SetVolume(m.channels[ch].volume)
	p.Play()
	m.channels[ch].player = p
}

func (m *AudioMixer) Stop(ch config.Channel) {
	c := &m.channels[ch]
	if c.player == nil {
		return
	}
	if err := c.player.Close(); err != nil {
		log.Printf("stop channel %d: %v", ch, err)
	}
	c.player = nil
}

func (m *AudioMixer) SetVolume(ch config.Channel, volume float64) {
	c := &m.channels[ch]
	c.volume = volume
	if c.player != nil {
		c.player.SetVolume(volume)
	}
}
