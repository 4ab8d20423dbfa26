package utils

import "golang.org/x/image/math/f64"

// Rect 轴对齐矩形，边界包含在内
type Rect struct {
	MinX, MaxX, MinY, MaxY float64
}

// RectAround 以 center 为中心、尺寸为 size 的矩形
func RectAround(center, size f64.Vec2) Rect {
	return Rect{
		MinX: center[0] - size[0]/2,
		MaxX: center[0] + size[0]/2,
		MinY: center[1] - size[1]/2,
		MaxY: center[1] + size[1]/2,
	}
}

// Contains 判断 p 是否在矩形内，落在边上也算
func (r Rect) Contains(p f64.Vec2) bool {
	return r.MinX <= p[0] && p[0] <= r.MaxX && r.MinY <= p[1] && p[1] <= r.MaxY
}
