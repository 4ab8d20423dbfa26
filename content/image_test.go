package main

import (
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trzmielit/content/config"
)

func imagePaths() []string {
	paths := []string{
		config.BackgroundImage,
		config.TitleImage,
		config.SingleButtonImage,
		config.MultiButtonImage,
		config.SettingsButtonImage,
		config.MusicOnImage,
		config.MusicOffImage,
		config.SoundOnImage,
		config.SoundOffImage,
		config.ObstacleImage,
	}
	for i := 0; i < config.PlayerFrameCount; i++ {
		paths = append(paths, config.PlayerFrameImage(i))
	}
	for d := 0; d < 10; d++ {
		paths = append(paths, config.DigitImage(d))
	}
	return paths
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func writeAssetRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, p := range imagePaths() {
		writePNG(t, filepath.Join(dir, p), 120, 80)
	}
	return dir
}

func TestLoadAssetsMissingRoot(t *testing.T) {
	_, err := LoadAssets(t.TempDir())
	if err == nil {
		t.Fatal("expected error for empty asset root")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "load image \"images/") {
		t.Errorf("err = %q does not name the image", err)
	}
}

func TestLoadAssetsMissingOneFile(t *testing.T) {
	dir := writeAssetRoot(t)
	if err := os.Remove(filepath.Join(dir, config.DigitImage(7))); err != nil {
		t.Fatal(err)
	}
	_, err := LoadAssets(dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), config.DigitImage(7)) {
		t.Errorf("err = %q, want it to name %s", err, config.DigitImage(7))
	}
}

func TestLoadAssetsCorruptFile(t *testing.T) {
	dir := writeAssetRoot(t)
	if err := os.WriteFile(filepath.Join(dir, config.TitleImage), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadAssets(dir)
	if err == nil {
		t.Fatal("expected error for corrupt image")
	}
	if !strings.Contains(err.Error(), config.TitleImage) {
		t.Errorf("err = %q, want it to name %s", err, config.TitleImage)
	}
}

func TestLoadAssetsScalesSettingsIcon(t *testing.T) {
	a, err := LoadAssets(writeAssetRoot(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := a.Settings.Bounds(); b.Dx() != config.SettingsIconW || b.Dy() != config.SettingsIconH {
		t.Errorf("settings icon = %dx%d, want %dx%d", b.Dx(), b.Dy(), config.SettingsIconW, config.SettingsIconH)
	}
	if b := a.Title.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("title = %dx%d, want 120x80", b.Dx(), b.Dy())
	}
}

func TestScaleImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	writePNG(t, path, 256, 128)
	img, err := loadImage(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := scaleImage(img, 50, 50).Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("scaled = %dx%d, want 50x50", b.Dx(), b.Dy())
	}
}
