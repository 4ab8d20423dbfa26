package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
	"trzmielit/content/utils"
)

// Title 标题动画：静止时缓慢缩放，进入单人模式后向最近的边缘退场
type Title struct {
	image  *ebiten.Image
	center f64.Vec2
	size   f64.Vec2
	scale  float64
	pulse  *gween.Tween
	grow   bool

	exiting bool
	target  f64.Vec2
	gone    bool
}

// NewTitle topLeft 为标题左上角
func NewTitle(img *ebiten.Image, topLeft f64.Vec2) *Title {
	size := imageSize(img)
	t := &Title{
		image:  img,
		center: f64.Vec2{topLeft[0] + size[0]/2, topLeft[1] + size[1]/2},
		size:   size,
		scale:  1,
		grow:   true,
	}
	t.pulse = gween.New(1, config.TitlePulse, config.TitlePulseTime, ease.InOutSine)
	return t
}

func (t *Title) Update() bool {
	if t.gone {
		return true
	}
	if t.exiting {
		t.center, t.gone = utils.StepToward(t.center, t.target, config.SwipeSpeed)
		return t.gone
	}
	v, finished := t.pulse.Update(1.0 / config.FPS)
	t.scale = float64(v)
	if finished {
		// 往返播放
		t.grow = !t.grow
		if t.grow {
			t.pulse = gween.New(1, config.TitlePulse, config.TitlePulseTime, ease.InOutSine)
		} else {
			t.pulse = gween.New(config.TitlePulse, 1, config.TitlePulseTime, ease.InOutSine)
		}
	}
	return false
}

func (t *Title) SwipeOut() {
	if t.exiting || t.gone {
		return
	}
	t.exiting = true
	t.target = utils.ExitTarget(t.center, t.size, config.ScreenWidth, config.ScreenHeight, config.SwipeMargin)
}

func (t *Title) Gone() bool {
	return t.gone
}

func (t *Title) Draw(screen *ebiten.Image) {
	if t.gone {
		return
	}
	drawCentered(screen, t.image, t.center, t.scale)
}
