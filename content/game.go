package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
)

type Game struct {
	session *Session
}

// anyReleased 任意一个鼠标按键在本帧松开
func anyReleased(released func(ebiten.MouseButton) bool) bool {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if released(b) {
			return true
		}
	}
	return false
}

// readInput 汇总本帧的鼠标与键盘状态
func readInput() Input {
	x, y := ebiten.CursorPosition()
	return Input{
		Cursor: f64.Vec2{float64(x), float64(y)},
		Click:  anyReleased(inpututil.IsMouseButtonJustReleased),
		Jump:   ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

func (g *Game) Update() error {
	// 按 ESC 直接退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.session.Update(readInput())
	return nil
}

// Draw 每次绘制都会调用这个函数，重新设置画面元素的内容
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
