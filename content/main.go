// Copyright 2018 The Ebiten Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"trzmielit/content/config"
)

// Init 加载字体、图片和声音，任何资源缺失都会返回错误
func Init(settings config.Settings) (*Game, error) {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := InitFont(); err != nil {
		return nil, err
	}
	assets, err := LoadAssets(settings.AssetDir)
	if err != nil {
		return nil, err
	}
	mixer, err := NewMixer(settings.AssetDir)
	if err != nil {
		return nil, err
	}
	return &Game{
		session: NewSession(assets, mixer, rand.New(rand.NewSource(seed)), settings),
	}, nil
}

func main() {
	path := config.GetEnv(config.EnvConfig, config.DefaultConfigPath)
	settings, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("config %s, assets %s", path, settings.AssetDir)

	g, err := Init(settings)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(config.FPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
