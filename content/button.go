package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
	"trzmielit/content/utils"
)

// exiter 可以执行退场动画的界面元素
type exiter interface {
	SwipeOut()
	Gone() bool
}

// Button 菜单按钮。悬停时放大并播放一次提示音，点击时调用 onClick 并切换 clicked
type Button struct {
	image        *ebiten.Image
	clickedImage *ebiten.Image // 可选，clicked 为 true 时显示
	center       f64.Vec2
	size         f64.Vec2 // 原始尺寸，用于点击判定
	scale        float64
	played       bool // 本次悬停是否已播放提示音
	clicked      bool
	onClick      func()
	onHover      func()

	exiting bool
	target  f64.Vec2
	gone    bool
}

type ButtonOption func(b *Button)

// WithClickedImage 切换按钮（如音乐开关）在 clicked 时显示的图片
func WithClickedImage(img *ebiten.Image) ButtonOption {
	return func(b *Button) {
		b.clickedImage = img
	}
}

func WithOnClick(fn func()) ButtonOption {
	return func(b *Button) {
		b.onClick = fn
	}
}

func WithOnHover(fn func()) ButtonOption {
	return func(b *Button) {
		b.onHover = fn
	}
}

func NewButton(img *ebiten.Image, center f64.Vec2, options ...ButtonOption) *Button {
	b := &Button{
		image:  img,
		center: center,
		size:   imageSize(img),
		scale:  1,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Bounds 点击判定区域，总是由原始尺寸和当前中心计算
func (b *Button) Bounds() utils.Rect {
	return utils.RectAround(b.center, b.size)
}

func (b *Button) Hovered(cursor f64.Vec2) bool {
	return b.Bounds().Contains(cursor)
}

// Update 每帧调用。退场过程中只移动位置，返回值表示按钮是否已经离开屏幕
func (b *Button) Update(cursor f64.Vec2, click bool) bool {
	if b.gone {
		return true
	}
	if b.exiting {
		b.center, b.gone = utils.StepToward(b.center, b.target, config.SwipeSpeed)
		return b.gone
	}

	if !b.Hovered(cursor) {
		b.scale = 1
		b.played = false
		return false
	}
	if !b.played {
		if b.onHover != nil {
			b.onHover()
		}
		b.played = true
	}
	b.scale = config.HoverScale
	if click && b.onClick != nil {
		b.onClick()
		b.clicked = !b.clicked
	}
	return false
}

// SwipeOut 开始向最近的屏幕边缘退场
func (b *Button) SwipeOut() {
	if b.exiting || b.gone {
		return
	}
	b.exiting = true
	b.scale = 1
	b.target = utils.ExitTarget(b.center, b.size, config.ScreenWidth, config.ScreenHeight, config.SwipeMargin)
}

func (b *Button) Gone() bool {
	return b.gone
}

func (b *Button) Clicked() bool {
	return b.clicked
}

func (b *Button) SetClicked(clicked bool) {
	b.clicked = clicked
}

func (b *Button) Scale() float64 {
	return b.scale
}

func (b *Button) Center() f64.Vec2 {
	return b.center
}

// current 当前应显示的图片
func (b *Button) current() *ebiten.Image {
	if b.clicked && b.clickedImage != nil {
		return b.clickedImage
	}
	return b.image
}

func (b *Button) Draw(screen *ebiten.Image) {
	if b.gone {
		return
	}
	drawCentered(screen, b.current(), b.center, b.scale)
}
