package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
)

// Flags 在整个进程生命周期内有效的开关与计分
type Flags struct {
	Music        bool
	Sound        bool
	SettingsOpen bool
	Collapsing   bool // 一次性触发：下一帧让所有菜单元素开始退场
	SinglePlayer bool
	Score        int
}

// Input 一帧的输入
type Input struct {
	Cursor f64.Vec2
	Click  bool // 鼠标按键在本帧松开
	Jump   bool // 空格或上方向键处于按下状态
}

// Session 菜单与游戏的全部状态，只在游戏循环中修改
type Session struct {
	flags  Flags
	state  config.State
	mixer  Mixer
	rand   *rand.Rand
	assets *Assets

	title          *Title
	singleButton   *Button
	multiButton    *Button
	settingsButton *Button
	musicToggle    *Button
	soundToggle    *Button
	player         *Player
	obstacles      []*Obstacle
	counter        *Counter
}

func NewSession(a *Assets, m Mixer, r *rand.Rand, settings config.Settings) *Session {
	s := &Session{
		flags: Flags{
			Music: settings.Music,
			Sound: settings.Sounds,
		},
		state:  config.StateMenu,
		mixer:  m,
		rand:   r,
		assets: a,
	}

	hover := WithOnHover(func() {
		s.mixer.Play(config.ChannelEffects, SoundHover, false)
	})
	s.title = NewTitle(a.Title, f64.Vec2{config.TitleX, config.TitleY})
	s.singleButton = NewButton(a.SingleButton, f64.Vec2{config.SingleButtonX, config.SingleButtonY},
		hover, WithOnClick(s.clickable(s.startSingle)))
	// 双人模式尚未实现，按钮只有悬停效果
	s.multiButton = NewButton(a.MultiButton, f64.Vec2{config.MultiButtonX, config.MultiButtonY}, hover)
	s.settingsButton = NewButton(a.Settings, f64.Vec2{config.SettingsButtonX, config.SettingsButtonY},
		hover, WithOnClick(s.clickable(s.toggleSettings)))
	s.musicToggle = NewButton(a.MusicOn, f64.Vec2{config.MusicToggleX, config.MusicToggleY},
		hover, WithClickedImage(a.MusicOff), WithOnClick(s.clickable(s.toggleMusic)))
	s.soundToggle = NewButton(a.SoundOn, f64.Vec2{config.SoundToggleX, config.SoundToggleY},
		hover, WithClickedImage(a.SoundOff), WithOnClick(s.clickable(s.toggleSound)))
	// clicked 的开关显示“关闭”图片
	s.musicToggle.SetClicked(!s.flags.Music)
	s.soundToggle.SetClicked(!s.flags.Sound)

	s.player = NewPlayer(a.PlayerFrames[:], f64.Vec2{config.PlayerX, config.PlayerY}, func() {
		s.mixer.Play(config.ChannelEffects, SoundJump, false)
	})
	s.counter = NewCounter(a.Digits)

	if s.flags.Music {
		s.mixer.Play(config.ChannelMusic, SoundMusic, true)
	}
	s.mixer.SetVolume(config.ChannelEffects, effectsVolume(s.flags.Sound))
	return s
}

func effectsVolume(on bool) float64 {
	if on {
		return 1
	}
	return 0
}

// clickable 在回调前播放点击音效
func (s *Session) clickable(fn func()) func() {
	return func() {
		s.mixer.Play(config.ChannelEffects, SoundClick, false)
		fn()
	}
}

func (s *Session) toggleSettings() {
	s.flags.SettingsOpen = !s.flags.SettingsOpen
	if s.flags.SettingsOpen {
		s.state = config.StateSettingsOpen
	} else {
		s.state = config.StateMenu
	}
}

func (s *Session) toggleMusic() {
	s.flags.Music = !s.flags.Music
	if s.flags.Music {
		s.mixer.Play(config.ChannelMusic, SoundMusic, true)
	} else {
		s.mixer.Stop(config.ChannelMusic)
	}
}

func (s *Session) toggleSound() {
	s.flags.Sound = !s.flags.Sound
	s.mixer.SetVolume(config.ChannelEffects, effectsVolume(s.flags.Sound))
}

// startSingle 进入单人模式。菜单不会再恢复
func (s *Session) startSingle() {
	if s.state != config.StateMenu {
		return
	}
	s.state = config.StateCollapsing
	s.flags.Collapsing = true
	s.flags.SinglePlayer = true
	s.player.StartSingle()
	s.obstacles = SpawnObstacles(s.assets.Obstacle, s.rand)
}

func (s *Session) menuButtons() []*Button {
	return []*Button{s.singleButton, s.multiButton, s.settingsButton}
}

// exiters 单人模式开始时需要退场的元素
func (s *Session) exiters() []exiter {
	return []exiter{s.title, s.singleButton, s.multiButton, s.settingsButton}
}

func (s *Session) State() config.State {
	return s.state
}

func (s *Session) Flags() Flags {
	return s.flags
}

func (s *Session) Update(in Input) {
	s.flags.Score = WrapScore(s.flags.Score)
	// 本帧刚生成的障碍物从下一帧开始移动
	moving := s.flags.SinglePlayer

	switch s.state {
	case config.StateMenu:
		s.title.Update()
		for _, b := range s.menuButtons() {
			b.Update(in.Cursor, in.Click)
		}
	case config.StateSettingsOpen:
		s.title.Update()
		s.settingsButton.Update(in.Cursor, in.Click)
		s.musicToggle.Update(in.Cursor, in.Click)
		s.soundToggle.Update(in.Cursor, in.Click)
	case config.StateCollapsing:
		if s.flags.Collapsing {
			for _, e := range s.exiters() {
				e.SwipeOut()
			}
			s.flags.Collapsing = false
		}
		done := s.title.Update()
		for _, b := range s.menuButtons() {
			done = b.Update(in.Cursor, in.Click) && done
		}
		if done {
			s.state = config.StatePlaying
		}
	}

	s.player.Update(in.Jump)

	if moving {
		for _, o := range s.obstacles {
			if o.Update(s.rand) {
				s.flags.Score = WrapScore(s.flags.Score + 1)
			}
		}
	}
}

func (s *Session) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.assets.Background, nil)

	s.title.Draw(screen)
	for _, b := range s.menuButtons() {
		b.Draw(screen)
	}

	if s.state == config.StateSettingsOpen {
		s.drawSettings(screen)
	}

	for _, o := range s.obstacles {
		o.Draw(screen)
	}
	s.player.Draw(screen)

	if s.flags.SinglePlayer {
		s.counter.Draw(screen, s.flags.Score)
	}
}

// drawSettings 设置面板：半透明底板、两个开关及其说明文字
func (s *Session) drawSettings(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 200, 175, 400, 250, color.RGBA{0x00, 0x00, 0x00, 0xA0})

	for _, t := range []struct {
		label  string
		button *Button
	}{
		{"MUSIC", s.musicToggle},
		{"SOUNDS", s.soundToggle},
	} {
		t.button.Draw(screen)

		op := &text.DrawOptions{}
		op.GeoM.Translate(t.button.Center()[0]-t.button.size[0]/2-20, t.button.Center()[1])
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignEnd
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, t.label, &text.GoTextFace{
			Source: arcadeFaceSource,
			Size:   config.FontSize,
		}, op)
	}
}
