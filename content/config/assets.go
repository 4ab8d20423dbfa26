package config

import "fmt"

// 资源路径，相对于资源根目录
const (
	BackgroundImage     = "images/start/background.png"
	TitleImage          = "images/start/title.png"
	SingleButtonImage   = "images/start/Przycisk single.png"
	MultiButtonImage    = "images/start/Przycisk multi.png"
	SettingsButtonImage = "images/settings/settings_icon.png"
	MusicOnImage        = "images/settings/music_on.png"
	MusicOffImage       = "images/settings/music_off.png"
	SoundOnImage        = "images/settings/sound_on.png"
	SoundOffImage       = "images/settings/sound_off.png"
	ObstacleImage       = "images/game/obstacle.png"

	MusicSound = "sounds/music.wav"
	ClickSound = "sounds/click.wav"
	HoverSound = "sounds/on_hover.wav"
	JumpSound  = "sounds/jump.wav"
)

// PlayerFrameImage 玩家动画第 i 帧
func PlayerFrameImage(i int) string {
	return fmt.Sprintf("images/player/trzmiel_%d.png", i+1)
}

// DigitImage 数字 d 的图片
func DigitImage(d int) string {
	return fmt.Sprintf("images/numbers/%d.png", d)
}
