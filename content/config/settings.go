package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfig = "TRZMIEL_CONFIG"
	EnvAssets = "TRZMIEL_ASSETS"

	DefaultConfigPath = "trzmiel.toml"
)

// Settings 可由配置文件覆盖的启动参数
type Settings struct {
	AssetDir    string  `toml:"asset_dir"`
	WindowScale float64 `toml:"window_scale"`
	Music       bool    `toml:"music"`
	Sounds      bool    `toml:"sounds"`
	Seed        int64   `toml:"seed"` // 0 表示使用当前时间
}

func DefaultSettings() Settings {
	return Settings{
		AssetDir:    ".",
		WindowScale: 1,
		Music:       true,
		Sounds:      true,
	}
}

// GetEnv 读取环境变量 key，未设置时返回 fallback
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load 读取 path 指向的 TOML 文件。文件不存在时返回默认值，
// 环境变量 TRZMIEL_ASSETS 优先于文件中的 asset_dir。
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("decode config %q: %w", path, err)
	}
	s.AssetDir = GetEnv(EnvAssets, s.AssetDir)
	if s.AssetDir == "" {
		s.AssetDir = "."
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
	return s, nil
}
