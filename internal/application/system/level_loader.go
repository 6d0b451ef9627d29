package system

import (
	"fmt"

	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level using the entity sizes
// and enemy tuning of cfg.
func LoadLevel(lc *config.LevelConfig, cfg *config.GameConfig) (*Level, error) {
	behavior := NewEnemyBehavior(cfg.Physics)

	level := NewLevel(behavior)
	level.ID = lc.ID
	level.Name = lc.Name
	level.Background = lc.Background.Color
	level.SpawnX = lc.PlayerSpawn.X
	level.SpawnY = lc.PlayerSpawn.Y

	level.Platforms = make([]entity.Platform, 0, len(lc.Platforms))
	for _, p := range lc.Platforms {
		level.Platforms = append(level.Platforms,
			entity.NewPlatform(p.X, p.Y, p.Width, p.Height, entity.ParsePlatformType(p.Type)))
	}

	coinSize := cfg.Entities.Coin.Size
	level.Coins = make([]*entity.Coin, 0, len(lc.Coins))
	for _, c := range lc.Coins {
		level.Coins = append(level.Coins, entity.NewCoin(c.X, c.Y, coinSize.Width, coinSize.Height))
	}

	level.Enemies = make([]*entity.Enemy, 0, len(lc.Enemies))
	for i, e := range lc.Enemies {
		behaviorType, err := entity.ParseBehaviorType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		ec, ok := cfg.Entities.Enemies[e.Type]
		if !ok {
			return nil, fmt.Errorf("enemy %d: no entity config for %q", i, e.Type)
		}
		level.Enemies = append(level.Enemies, entity.NewEnemy(
			e.X, e.Y, ec.Size.Width, ec.Size.Height,
			behaviorType, behavior.InitialSpeed(behaviorType),
		))
	}

	return level, nil
}

// NewPlayerAt creates a player at the level spawn using the player entity config
func NewPlayerAt(level *Level, pc config.PlayerConfig) *entity.Player {
	return entity.NewPlayer(level.SpawnX, level.SpawnY, pc.Size.Width, pc.Size.Height, pc.Stats.Lives)
}
