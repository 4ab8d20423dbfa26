package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

// StepToward 从 cur 向 dst 直线移动一步，返回新位置以及是否已经到达。
// 剩余距离不超过 speed 时直接落在 dst 上。
func StepToward(cur, dst f64.Vec2, speed float64) (f64.Vec2, bool) {
	dx := dst[0] - cur[0]
	dy := dst[1] - cur[1]
	if math.Max(math.Abs(dx), math.Abs(dy)) <= speed {
		return dst, true
	}
	sx, sy := Normalize(dx, dy, speed)
	return f64.Vec2{cur[0] + sx, cur[1] + sy}, false
}
