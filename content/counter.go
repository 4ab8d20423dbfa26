package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
)

// Digits 将分数拆分为个位、十位、百位
func Digits(score int) (ones, tens, hundreds int) {
	return score % 10, (score / 10) % 10, score / 100
}

// WrapScore 三位计分板放不下的分数归零
func WrapScore(score int) int {
	if score >= config.ScoreLimit {
		return 0
	}
	return score
}

// DigitPlacement 一个数字在计分板上的位置
type DigitPlacement struct {
	Digit int
	X     float64
}

// Layout 计算需要绘制的数字及其横坐标，从个位开始。
// 随着位数增加个位右移，保证最左边的数字始终在 DigitLeftX。
func Layout(score int) []DigitPlacement {
	ones, tens, hundreds := Digits(score)
	switch {
	case score > 99:
		return []DigitPlacement{
			{Digit: ones, X: config.DigitRightX},
			{Digit: tens, X: config.DigitMiddleX},
			{Digit: hundreds, X: config.DigitLeftX},
		}
	case score > 9:
		return []DigitPlacement{
			{Digit: ones, X: config.DigitMiddleX},
			{Digit: tens, X: config.DigitLeftX},
		}
	default:
		return []DigitPlacement{
			{Digit: ones, X: config.DigitLeftX},
		}
	}
}

// Counter 计分板
type Counter struct {
	digits [10]*ebiten.Image
}

func NewCounter(digits [10]*ebiten.Image) *Counter {
	return &Counter{digits: digits}
}

func (c *Counter) Draw(screen *ebiten.Image, score int) {
	for _, p := range Layout(score) {
		drawCentered(screen, c.digits[p.Digit], f64.Vec2{p.X, config.CounterY}, 1)
	}
}
