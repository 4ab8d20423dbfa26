package config

// State 菜单状态机
type State int

const (
	StateMenu State = iota
	StateSettingsOpen
	StateCollapsing
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSettingsOpen:
		return "settings"
	case StateCollapsing:
		return "collapsing"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

const (
	Title        = "TrzmielIT"
	ScreenWidth  = 800
	ScreenHeight = 600
	FPS          = 32
	FontSize     = 16
)

// 菜单元素的位置（中心点，标题除外）
const (
	TitleX          = 50 // 标题左上角
	TitleY          = 50
	SingleButtonX   = 400
	SingleButtonY   = 400
	MultiButtonX    = 400
	MultiButtonY    = 500
	SettingsButtonX = 40
	SettingsButtonY = 560
	SettingsIconW   = 50
	SettingsIconH   = 50
	MusicToggleX    = 400
	MusicToggleY    = 250
	SoundToggleX    = 400
	SoundToggleY    = 350
)

// 按钮与标题动画
const (
	HoverScale     = 1.1  // 悬停时的放大倍数
	SwipeSpeed     = 20.0 // 退场动画每帧移动的像素
	SwipeMargin    = 10.0 // 退场目标超出屏幕边缘的距离
	TitlePulse     = 1.05 // 标题呼吸动画的最大缩放
	TitlePulseTime = 1.5  // 单程时长（秒）
)

// 玩家
const (
	PlayerFrameCount = 4
	PlayerX          = 150
	PlayerY          = 300
	BobAmplitude     = 5
	Gravity          = 1.5
	JumpImpulse      = -15.0
	JumpRefractory   = 3 // 跳跃后忽略输入的帧数
)

// 障碍物
const (
	ObstacleCount     = 3
	ObstacleStep      = 5.0
	ObstacleThreshold = -200.0
	ObstacleRespawnX  = 1000.0
	ObstacleMinY      = 60
	ObstacleMaxY      = 540
	ObstacleSpacing   = 400.0
)

// 计分
const (
	// ScoreLimit 分数达到此值时归零，三位数计分板无法显示更大的值
	ScoreLimit   = 1000
	CounterY     = 50
	DigitLeftX   = 85
	DigitMiddleX = 105
	DigitRightX  = 124
)

// Channel 混音通道
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelEffects
	ChannelCount
)
