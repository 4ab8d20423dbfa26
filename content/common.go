package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// drawCentered 以 center 为中心绘制缩放 scale 倍的 img
func drawCentered(screen, img *ebiten.Image, center f64.Vec2, scale float64) {
	w := float64(img.Bounds().Dx()) * scale
	h := float64(img.Bounds().Dy()) * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center[0]-w/2, center[1]-h/2)
	if scale != 1 {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(img, op)
}

func imageSize(img *ebiten.Image) f64.Vec2 {
	return f64.Vec2{float64(img.Bounds().Dx()), float64(img.Bounds().Dy())}
}
