package config

// LevelConfig is the root config for stage files (JSON or YAML).
// TMX stages are converted into the same structure.
type LevelConfig struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Background  BackgroundConfig   `json:"background" yaml:"background"`
	PlayerSpawn PositionConfig     `json:"playerSpawn" yaml:"playerSpawn"`
	Platforms   []PlatformConfig   `json:"platforms" yaml:"platforms"`
	Coins       []PositionConfig   `json:"coins" yaml:"coins"`
	Enemies     []EnemySpawnConfig `json:"enemies" yaml:"enemies"`
}

type BackgroundConfig struct {
	Color string `json:"color" yaml:"color"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type PlatformConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Type   string  `json:"type,omitempty" yaml:"type,omitempty"`
}

type EnemySpawnConfig struct {
	Type string  `json:"type" yaml:"type"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// DefaultLevel returns the built-in level used when no stage file is given
func DefaultLevel() *LevelConfig {
	coins := []PositionConfig{
		{130, 410}, {170, 410}, {210, 410},
		{450, 360}, {500, 360},
		{650, 310}, {700, 310},
		{220, 260}, {250, 260},
		{400, 210}, {450, 210}, {500, 210},
		{150, 160}, {250, 160}, {500, 110},
	}

	return &LevelConfig{
		ID:          "default",
		Name:        "Meadow",
		Background:  BackgroundConfig{Color: "#87CEEB"},
		PlayerSpawn: PositionConfig{X: 50, Y: 300},
		Platforms: []PlatformConfig{
			{X: 0, Y: 550, Width: 800, Height: 50, Type: "grass"},
			{X: 100, Y: 450, Width: 200, Height: 20, Type: "grass"},
			{X: 400, Y: 400, Width: 150, Height: 20, Type: "brick"},
			{X: 600, Y: 350, Width: 150, Height: 20, Type: "grass"},
			{X: 200, Y: 300, Width: 100, Height: 20, Type: "brick"},
			{X: 350, Y: 250, Width: 200, Height: 20, Type: "ice"},
			{X: 150, Y: 200, Width: 40, Height: 40, Type: "brick"},
			{X: 250, Y: 200, Width: 40, Height: 40, Type: "brick"},
			{X: 500, Y: 150, Width: 40, Height: 40, Type: "brick"},
		},
		Coins: coins,
		Enemies: []EnemySpawnConfig{
			{Type: "walker", X: 300, Y: 520},
			{Type: "walker", X: 450, Y: 370},
			{Type: "walker", X: 650, Y: 320},
			{Type: "flyer", X: 400, Y: 100},
			{Type: "jumper", X: 200, Y: 520},
		},
	}
}
