package main

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"trzmielit/content/config"
)

type mixerCall struct {
	op     string
	ch     config.Channel
	id     SoundID
	loop   bool
	volume float64
}

// fakeMixer 记录所有调用
type fakeMixer struct {
	calls []mixerCall
}

func (m *fakeMixer) Play(ch config.Channel, id SoundID, loop bool) {
	m.calls = append(m.calls, mixerCall{op: "play", ch: ch, id: id, loop: loop})
}

func (m *fakeMixer) Stop(ch config.Channel) {
	m.calls = append(m.calls, mixerCall{op: "stop", ch: ch})
}

func (m *fakeMixer) SetVolume(ch config.Channel, volume float64) {
	m.calls = append(m.calls, mixerCall{op: "volume", ch: ch, volume: volume})
}

func (m *fakeMixer) played(id SoundID) int {
	n := 0
	for _, c := range m.calls {
		if c.op == "play" && c.id == id {
			n++
		}
	}
	return n
}

func (m *fakeMixer) last() mixerCall {
	return m.calls[len(m.calls)-1]
}

func (m *fakeMixer) reset() {
	m.calls = nil
}

func testAssets(t *testing.T) *Assets {
	t.Helper()
	a := &Assets{
		Background:   ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		Title:        ebiten.NewImage(700, 120),
		SingleButton: ebiten.NewImage(200, 60),
		MultiButton:  ebiten.NewImage(200, 60),
		Settings:     ebiten.NewImage(config.SettingsIconW, config.SettingsIconH),
		MusicOn:      ebiten.NewImage(80, 40),
		MusicOff:     ebiten.NewImage(80, 40),
		SoundOn:      ebiten.NewImage(80, 40),
		SoundOff:     ebiten.NewImage(80, 40),
		Obstacle:     ebiten.NewImage(60, 200),
	}
	for i := range a.PlayerFrames {
		a.PlayerFrames[i] = ebiten.NewImage(64, 48)
	}
	for d := range a.Digits {
		a.Digits[d] = ebiten.NewImage(20, 30)
	}
	return a
}

func newTestSession(t *testing.T, settings config.Settings) (*Session, *fakeMixer) {
	t.Helper()
	m := &fakeMixer{}
	return NewSession(testAssets(t), m, rand.New(rand.NewSource(1)), settings), m
}
