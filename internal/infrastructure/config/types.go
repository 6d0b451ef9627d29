package config

// PhysicsConfig is the root config for physics.json.
// Velocities and accelerations are pixels per tick, durations are seconds.
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Stage     StageConfig     `json:"stage"`
	Physics   PhysicsSettings `json:"physics"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	Collision CollisionConfig `json:"collision"`
	Combat    CombatConfig    `json:"combat"`
	Enemy     EnemyAIConfig   `json:"enemy"`
	Scoring   ScoringConfig   `json:"scoring"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// StageConfig is the playfield every entity is clamped to
type StageConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PhysicsSettings struct {
	Gravity   float64 `json:"gravity"`
	Friction  float64 `json:"friction"`
	MaxSpeedX float64 `json:"maxSpeedX"`
	MaxSpeedY float64 `json:"maxSpeedY"`
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration"`
}

type JumpConfig struct {
	Force float64 `json:"force"` // negative = upward
	// StompBounceDivisor: bounce velocity after a stomp is Force / divisor
	StompBounceDivisor float64 `json:"stompBounceDivisor"`
}

// CollisionConfig holds the approach-side tolerances (SLOP)
type CollisionConfig struct {
	PlayerSlop float64 `json:"playerSlop"`
	EnemySlop  float64 `json:"enemySlop"`
}

type CombatConfig struct {
	Invulnerability float64         `json:"invulnerability"`
	Knockback       KnockbackConfig `json:"knockback"`
}

type KnockbackConfig struct {
	Speed float64 `json:"speed"`
	// UpDivisor: knockback vertical velocity is Jump.Force / divisor
	UpDivisor float64 `json:"upDivisor"`
}

// EnemyAIConfig configures the three enemy behaviors
type EnemyAIConfig struct {
	Gravity        float64      `json:"gravity"`
	DefeatDuration float64      `json:"defeatDuration"`
	Walker         WalkerConfig `json:"walker"`
	Flyer          FlyerConfig  `json:"flyer"`
	Jumper         JumperConfig `json:"jumper"`
}

type WalkerConfig struct {
	Speed           float64 `json:"speed"`
	LookAhead       float64 `json:"lookAhead"`
	GroundTolerance float64 `json:"groundTolerance"`
}

type FlyerConfig struct {
	Speed        float64 `json:"speed"`
	FlipInterval float64 `json:"flipInterval"`
	BobAmplitude float64 `json:"bobAmplitude"`
	BobFrequency float64 `json:"bobFrequency"` // radians per second
}

type JumperConfig struct {
	Interval float64 `json:"interval"`
	Force    float64 `json:"force"` // negative = upward
	Range    float64 `json:"range"`
	HopSpeed float64 `json:"hopSpeed"`
}

type ScoringConfig struct {
	Coin  int `json:"coin"`
	Stomp int `json:"stomp"`
}
