package utils

import "math"

// Normalize 缩放位移向量，使较长的轴正好为 speed，另一轴按比例缩放
func Normalize(dx, dy, speed float64) (float64, float64) {
	m := math.Max(math.Abs(dx), math.Abs(dy))
	if m == 0 {
		return 0, 0
	}
	return dx / m * speed, dy / m * speed
}
