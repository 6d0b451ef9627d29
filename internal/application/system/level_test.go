package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

func createTestLevel(t *testing.T) *Level {
	t.Helper()
	level, err := LoadLevel(config.DefaultLevel(), config.Default())
	require.NoError(t, err)
	return level
}

func TestLoadLevel(t *testing.T) {
	t.Run("default level", func(t *testing.T) {
		level := createTestLevel(t)

		assert.Equal(t, "default", level.ID)
		assert.Equal(t, "#87CEEB", level.Background)
		assert.Len(t, level.Platforms, 9)
		assert.Len(t, level.Coins, 15)
		assert.Equal(t, 50.0, level.SpawnX)
		assert.Equal(t, 300.0, level.SpawnY)
		assert.Equal(t, entity.PlatformGrass, level.Platforms[0].Type)

		for _, coin := range level.Coins {
			assert.Equal(t, 20.0, coin.W)
			assert.True(t, coin.Active)
		}

		counts := map[entity.BehaviorType]int{}
		for _, e := range level.Enemies {
			counts[e.Behavior]++
			switch e.Behavior {
			case entity.BehaviorWalker:
				assert.Equal(t, -1.5, e.VX)
				assert.Equal(t, 40.0, e.H)
			case entity.BehaviorFlyer:
				assert.Equal(t, 0.0, e.VX)
				assert.Equal(t, 30.0, e.H)
			case entity.BehaviorJumper:
				assert.Equal(t, 35.0, e.W)
			}
		}
		assert.Equal(t, 3, counts[entity.BehaviorWalker])
		assert.Equal(t, 1, counts[entity.BehaviorFlyer])
		assert.Equal(t, 1, counts[entity.BehaviorJumper])
	})

	t.Run("unknown enemy type", func(t *testing.T) {
		lc := config.DefaultLevel()
		lc.Enemies = append(lc.Enemies, config.EnemySpawnConfig{Type: "roller", X: 10, Y: 10})

		_, err := LoadLevel(lc, config.Default())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "roller")
	})

	t.Run("enemy without entity config", func(t *testing.T) {
		cfg := config.Default()
		delete(cfg.Entities.Enemies, "flyer")

		_, err := LoadLevel(config.DefaultLevel(), cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "flyer")
	})
}

func TestLevel_Complete(t *testing.T) {
	level := NewLevel(NewEnemyBehavior(createTestPhysicsConfig()))
	level.Coins = []*entity.Coin{
		entity.NewCoin(0, 0, 20, 20),
		entity.NewCoin(50, 0, 20, 20),
	}
	player := createTestPlayer(400, 100)

	assert.False(t, level.Update(testDT, player))
	assert.Equal(t, 2, level.RemainingCoins())

	level.Coins[0].Collect()
	assert.False(t, level.Update(testDT, player))

	level.Coins[1].Collect()
	assert.True(t, level.Update(testDT, player))
	assert.True(t, level.IsComplete())
	assert.Equal(t, 0, level.RemainingCoins())

	// Stays complete
	assert.True(t, level.Update(testDT, player))
}

func TestLevel_UpdateSkipsInactiveEnemies(t *testing.T) {
	level := NewLevel(NewEnemyBehavior(createTestPhysicsConfig()))
	active := createTestWalker(300, 560)
	inactive := createTestWalker(500, 560)
	inactive.Active = false
	level.Enemies = []*entity.Enemy{active, inactive}

	level.Update(testDT, nil)

	assert.Equal(t, 298.5, active.X)
	assert.Equal(t, 500.0, inactive.X)
}

func TestLevel_CoinsTick(t *testing.T) {
	level := NewLevel(NewEnemyBehavior(createTestPhysicsConfig()))
	level.Coins = []*entity.Coin{entity.NewCoin(0, 0, 20, 20)}

	level.Update(0.25, nil)
	level.Update(0.25, nil)

	assert.InDelta(t, 0.5, level.Coins[0].Elapsed, 1e-9)
	assert.Equal(t, 0.0, level.Coins[0].Y)
}

func TestLevel_Reset(t *testing.T) {
	level := createTestLevel(t)
	player := createTestPlayer(50, 300)

	for _, coin := range level.Coins {
		coin.Collect()
	}
	for i := 0; i < 120; i++ {
		level.Update(testDT, player)
	}
	level.Enemies[0].Defeat()
	level.Enemies[1].Active = false

	level.Reset()

	for _, coin := range level.Coins {
		assert.True(t, coin.Active)
		assert.False(t, coin.Collected)
	}
	for i, e := range level.Enemies {
		lc := config.DefaultLevel().Enemies[i]
		assert.True(t, e.Active)
		assert.False(t, e.Defeated)
		assert.Equal(t, lc.X, e.X)
		assert.Equal(t, lc.Y, e.Y)
		assert.Equal(t, 0.0, e.VY)
		assert.Equal(t, -1, e.Direction)
		assert.Equal(t, 0.0, e.MoveTimer)
		assert.Equal(t, 0.0, e.JumpTimer)
	}
	assert.False(t, level.IsComplete())
}
