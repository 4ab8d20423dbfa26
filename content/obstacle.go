package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"trzmielit/content/config"
)

// Obstacle 向左移动的障碍物，越过阈值后回到屏幕右侧
type Obstacle struct {
	image *ebiten.Image
	pos   f64.Vec2
}

func randomObstacleY(r *rand.Rand) float64 {
	return float64(config.ObstacleMinY + r.Intn(config.ObstacleMaxY-config.ObstacleMinY+1))
}

// SpawnObstacles 在屏幕右侧依次生成障碍物
func SpawnObstacles(img *ebiten.Image, r *rand.Rand) []*Obstacle {
	obstacles := make([]*Obstacle, 0, config.ObstacleCount)
	for i := 0; i < config.ObstacleCount; i++ {
		obstacles = append(obstacles, &Obstacle{
			image: img,
			pos:   f64.Vec2{config.ObstacleRespawnX + float64(i)*config.ObstacleSpacing, randomObstacleY(r)},
		})
	}
	return obstacles
}

// Update 返回本帧是否发生了回收
func (o *Obstacle) Update(r *rand.Rand) bool {
	if o.pos[0] <= config.ObstacleThreshold {
		o.pos = f64.Vec2{config.ObstacleRespawnX, randomObstacleY(r)}
		return true
	}
	o.pos[0] -= config.ObstacleStep
	return false
}

func (o *Obstacle) Position() f64.Vec2 {
	return o.pos
}

func (o *Obstacle) Draw(screen *ebiten.Image) {
	drawCentered(screen, o.image, o.pos, 1)
}
