package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
)

// PlayerMode 玩家竖直方向的运动方式
type PlayerMode int

const (
	// PlayerIdle 菜单/双人模式：上下浮动
	PlayerIdle PlayerMode = iota
	// PlayerSingle 单人模式：重力与跳跃
	PlayerSingle
)

type Player struct {
	frames   []*ebiten.Image
	frame    int      // 当前动画帧
	base     f64.Vec2 // 浮动的基准中心
	pos      f64.Vec2 // 人物在屏幕上的中心位置
	mode     PlayerMode
	offset   int     // 浮动偏移，范围 [-BobAmplitude, BobAmplitude]
	bobDir   int     // 浮动方向，+1 或 -1
	velocity float64 // 单人模式下的竖直速度
	cooldown int     // 跳跃冷却剩余帧数
	onJump   func()
}

func NewPlayer(frames []*ebiten.Image, center f64.Vec2, onJump func()) *Player {
	return &Player{
		frames: frames,
		base:   center,
		pos:    center,
		mode:   PlayerIdle,
		bobDir: 1,
		onJump: onJump,
	}
}

// StartSingle 切换到单人模式，从当前位置开始受重力影响
func (p *Player) StartSingle() {
	if p.mode == PlayerSingle {
		return
	}
	p.mode = PlayerSingle
	p.velocity = 0
	p.cooldown = 0
}

// Update jump 表示本帧跳跃键是否按下
func (p *Player) Update(jump bool) {
	p.frame = (p.frame + 1) % config.PlayerFrameCount

	switch p.mode {
	case PlayerIdle:
		p.offset += p.bobDir
		if p.offset >= config.BobAmplitude || p.offset <= -config.BobAmplitude {
			p.bobDir = -p.bobDir
		}
		p.pos[1] = p.base[1] + float64(p.offset)
	case PlayerSingle:
		if p.cooldown > 0 {
			p.cooldown--
		}
		p.velocity += config.Gravity
		if jump && p.cooldown == 0 {
			p.velocity = config.JumpImpulse
			p.cooldown = config.JumpRefractory
			if p.onJump != nil {
				p.onJump()
			}
		}
		p.pos[1] += p.velocity
	}
}

func (p *Player) Mode() PlayerMode {
	return p.mode
}

func (p *Player) Frame() int {
	return p.frame
}

func (p *Player) Offset() int {
	return p.offset
}

func (p *Player) Velocity() float64 {
	return p.velocity
}

func (p *Player) Position() f64.Vec2 {
	return p.pos
}

func (p *Player) Draw(screen *ebiten.Image) {
	drawCentered(screen, p.frames[p.frame], p.pos, 1)
}
