package utils

import (
	"golang.org/x/image/math/f64"
)

// Edge 屏幕边缘
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// NearestEdge 距离 (x, y) 最近的屏幕边缘。距离相等时按左、右、上、下的顺序取第一个
func NearestEdge(x, y, width, height float64) Edge {
	d := EdgeDistances(x, y, width, height)
	best := EdgeLeft
	for e := EdgeRight; e <= EdgeBottom; e++ {
		if d[e] < d[best] {
			best = e
		}
	}
	return best
}

// ExitTarget 让一个尺寸为 size 的元素从最近的边缘完全移出屏幕时的目标中心点
func ExitTarget(center, size f64.Vec2, width, height, margin float64) f64.Vec2 {
	switch NearestEdge(center[0], center[1], width, height) {
	case EdgeLeft:
		return f64.Vec2{-size[0]/2 - margin, center[1]}
	case EdgeRight:
		return f64.Vec2{width + size[0]/2 + margin, center[1]}
	case EdgeTop:
		return f64.Vec2{center[0], -size[1]/2 - margin}
	default:
		return f64.Vec2{center[0], height + size[1]/2 + margin}
	}
}
