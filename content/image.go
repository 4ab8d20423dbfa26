package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"trzmielit/content/config"
)

// Assets 游戏用到的全部图片
type Assets struct {
	Background   *ebiten.Image
	Title        *ebiten.Image
	SingleButton *ebiten.Image
	MultiButton  *ebiten.Image
	Settings     *ebiten.Image
	MusicOn      *ebiten.Image
	MusicOff     *ebiten.Image
	SoundOn      *ebiten.Image
	SoundOff     *ebiten.Image
	Obstacle     *ebiten.Image
	PlayerFrames [config.PlayerFrameCount]*ebiten.Image
	Digits       [10]*ebiten.Image
}

func loadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// scaleImage 将 img 缩放到 w x h
func scaleImage(img *ebiten.Image, w, h int) *ebiten.Image {
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(img.Bounds().Dx()), float64(h)/float64(img.Bounds().Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
	return dst
}

// LoadAssets 读取全部图片，任何一张缺失都会返回错误
func LoadAssets(dir string) (*Assets, error) {
	a := &Assets{}
	targets := map[string]**ebiten.Image{
		config.BackgroundImage:     &a.Background,
		config.TitleImage:          &a.Title,
		config.SingleButtonImage:   &a.SingleButton,
		config.MultiButtonImage:    &a.MultiButton,
		config.SettingsButtonImage: &a.Settings,
		config.MusicOnImage:        &a.MusicOn,
		config.MusicOffImage:       &a.MusicOff,
		config.SoundOnImage:        &a.SoundOn,
		config.SoundOffImage:       &a.SoundOff,
		config.ObstacleImage:       &a.Obstacle,
	}
	for i := range a.PlayerFrames {
		targets[config.PlayerFrameImage(i)] = &a.PlayerFrames[i]
	}
	for d := range a.Digits {
		targets[config.DigitImage(d)] = &a.Digits[d]
	}
	for p, dst := range targets {
		img, err := loadImage(filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("load image %q: %w", p, err)
		}
		*dst = img
	}
	a.Settings = scaleImage(a.Settings, config.SettingsIconW, config.SettingsIconH)
	return a, nil
}
