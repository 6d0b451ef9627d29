package config

import (
	"errors"
	"fmt"
)

// Default returns the built-in configuration of the original game
func Default() *GameConfig {
	return &GameConfig{
		Physics:  DefaultPhysics(),
		Entities: DefaultEntities(),
	}
}

// DefaultPhysics returns the built-in physics.json values
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Stage: StageConfig{Width: 800, Height: 600},
		Physics: PhysicsSettings{
			Gravity:   0.5,
			Friction:  0.8,
			MaxSpeedX: 5,
			MaxSpeedY: 12,
		},
		Movement: MovementConfig{Acceleration: 1},
		Jump: JumpConfig{
			Force:              -12,
			StompBounceDivisor: 1.5,
		},
		Collision: CollisionConfig{
			PlayerSlop: 10,
			EnemySlop:  5,
		},
		Combat: CombatConfig{
			Invulnerability: 1.5,
			Knockback: KnockbackConfig{
				Speed:     5,
				UpDivisor: 2,
			},
		},
		Enemy: EnemyAIConfig{
			Gravity:        0.3,
			DefeatDuration: 0.5,
			Walker: WalkerConfig{
				Speed:           1.5,
				LookAhead:       5,
				GroundTolerance: 5,
			},
			Flyer: FlyerConfig{
				Speed:        1.5,
				FlipInterval: 2,
				BobAmplitude: 2,
				BobFrequency: 2,
			},
			Jumper: JumperConfig{
				Interval: 3,
				Force:    -8,
				Range:    200,
				HopSpeed: 2,
			},
		},
		Scoring: ScoringConfig{
			Coin:  10,
			Stomp: 50,
		},
	}
}

// DefaultEntities returns the built-in entities.json values
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{
			ID:    "player",
			Size:  SizeConfig{Width: 40, Height: 60},
			Stats: PlayerStats{Lives: 3},
		},
		Enemies: map[string]EnemyConfig{
			"walker": {ID: "walker", Size: SizeConfig{Width: 40, Height: 40}, Color: "#8B0000"},
			"flyer":  {ID: "flyer", Size: SizeConfig{Width: 40, Height: 30}, Color: "#800080"},
			"jumper": {ID: "jumper", Size: SizeConfig{Width: 35, Height: 45}, Color: "#006400"},
		},
		Coin: CoinConfig{
			Size:           SizeConfig{Width: 20, Height: 20},
			FloatAmplitude: 5,
			FloatPeriod:    1,
		},
	}
}

// Validate checks values the simulation cannot run without
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.Stage.Width <= 0 || c.Stage.Height <= 0 {
		errs = append(errs, fmt.Errorf("stage size must be positive, got %vx%v", c.Stage.Width, c.Stage.Height))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("physics.friction must be in [0,1], got %v", c.Physics.Friction))
	}
	if c.Physics.MaxSpeedX <= 0 || c.Physics.MaxSpeedY <= 0 {
		errs = append(errs, errors.New("physics max speeds must be positive"))
	}
	if c.Jump.Force >= 0 {
		errs = append(errs, fmt.Errorf("jump.force must be negative (upward), got %v", c.Jump.Force))
	}
	if c.Jump.StompBounceDivisor == 0 {
		errs = append(errs, errors.New("jump.stompBounceDivisor must not be zero"))
	}
	if c.Combat.Knockback.UpDivisor == 0 {
		errs = append(errs, errors.New("combat.knockback.upDivisor must not be zero"))
	}
	if c.Combat.Invulnerability < 0 {
		errs = append(errs, fmt.Errorf("combat.invulnerability must not be negative, got %v", c.Combat.Invulnerability))
	}
	if c.Collision.PlayerSlop < 0 || c.Collision.EnemySlop < 0 {
		errs = append(errs, errors.New("collision slop must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate checks entity sizes and lives
func (c *EntitiesConfig) Validate() error {
	var errs []error
	if c.Player.Size.Width <= 0 || c.Player.Size.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Stats.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player lives must be positive, got %d", c.Player.Stats.Lives))
	}
	if c.Coin.Size.Width <= 0 || c.Coin.Size.Height <= 0 {
		errs = append(errs, errors.New("coin size must be positive"))
	}
	for _, name := range []string{"walker", "flyer", "jumper"} {
		e, ok := c.Enemies[name]
		if !ok {
			errs = append(errs, fmt.Errorf("missing enemy config %q", name))
			continue
		}
		if e.Size.Width <= 0 || e.Size.Height <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q size must be positive", name))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that every rectangle in the level has positive area
func (c *LevelConfig) Validate() error {
	var errs []error
	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("platform %d has non-positive size %vx%v", i, p.Width, p.Height))
		}
	}
	return errors.Join(errs...)
}
