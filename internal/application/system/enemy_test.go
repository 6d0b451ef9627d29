package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinhop/internal/domain/entity"
)

func createTestWalker(x, y float64) *entity.Enemy {
	return entity.NewEnemy(x, y, 40, 40, entity.BehaviorWalker, -1.5)
}

func TestEnemyBehavior_InitialSpeed(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())

	assert.Equal(t, -1.5, eb.InitialSpeed(entity.BehaviorWalker))
	assert.Equal(t, 0.0, eb.InitialSpeed(entity.BehaviorFlyer))
	assert.Equal(t, 0.0, eb.InitialSpeed(entity.BehaviorJumper))
}

func TestEnemyBehavior_WalkerTurnsAtLedge(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())
	platforms := []entity.Platform{entity.NewPlatform(0, 400, 100, 20, entity.PlatformNormal)}
	walker := createTestWalker(0, 360)

	eb.Update(walker, testDT, platforms, nil)

	assert.Equal(t, 1, walker.Direction)
	assert.Equal(t, 1.5, walker.VX)
	assert.Equal(t, 0.0, walker.X)
	assert.Equal(t, 360.0, walker.Y)
	assert.True(t, walker.OnGround)

	// Patrols the platform without falling off either end
	turns := 0
	lastDir := walker.Direction
	for i := 0; i < 300; i++ {
		eb.Update(walker, testDT, platforms, nil)

		require.Equal(t, 360.0, walker.Y)
		require.GreaterOrEqual(t, walker.X, 0.0)
		require.LessOrEqual(t, walker.X+walker.W, 100.0)
		if walker.Direction != lastDir {
			turns++
			lastDir = walker.Direction
		}
	}
	assert.Greater(t, turns, 2)
}

func TestEnemyBehavior_WalkerTurnsAtWall(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())
	platforms := []entity.Platform{
		entity.NewPlatform(0, 400, 800, 20, entity.PlatformGrass),
		entity.NewPlatform(200, 300, 20, 100, entity.PlatformBrick),
	}
	walker := createTestWalker(150, 360)
	walker.VX = 1.5
	walker.Direction = 1

	for i := 0; i < 60 && walker.Direction == 1; i++ {
		eb.Update(walker, testDT, platforms, nil)
	}

	assert.Equal(t, -1, walker.Direction)
	assert.Equal(t, -1.5, walker.VX)
	assert.LessOrEqual(t, walker.X+walker.W, 200.0)
	assert.Equal(t, 360.0, walker.Y)
}

func TestEnemyBehavior_WalkerCornerAppliesBothCorrections(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())
	platforms := []entity.Platform{entity.NewPlatform(100, 400, 100, 20, entity.PlatformNormal)}
	walker := createTestWalker(58, 359)
	walker.VX = 3
	walker.VY = 1
	walker.Direction = 1

	eb.Update(walker, testDT, platforms, nil)

	// Pushed back horizontally and snapped onto the top in the same tick
	assert.Equal(t, 58.0, walker.X)
	assert.Equal(t, -3.0, walker.VX)
	assert.Equal(t, 360.0, walker.Y)
	assert.Equal(t, 0.0, walker.VY)
	assert.True(t, walker.OnGround)
}

func TestEnemyBehavior_WalkerTurnsAtStageSide(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())
	walker := createTestWalker(1, 560)

	eb.Update(walker, testDT, nil, nil)

	assert.Equal(t, 0.0, walker.X)
	assert.Equal(t, 1, walker.Direction)
	assert.Equal(t, 1.5, walker.VX)
	assert.Equal(t, 560.0, walker.Y)
	assert.True(t, walker.OnGround)
}

func TestEnemyBehavior_Flyer(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())
	// Flyers pass through platforms
	platforms := []entity.Platform{entity.NewPlatform(300, 90, 200, 20, entity.PlatformBrick)}
	flyer := entity.NewEnemy(400, 100, 40, 30, entity.BehaviorFlyer, 0)

	eb.Update(flyer, 0.5, platforms, nil)
	assert.Equal(t, 400.0, flyer.X)
	assert.InDelta(t, 100+math.Sin(1)*2, flyer.Y, 1e-9)
	assert.Equal(t, -1.5, flyer.VX)
	assert.Equal(t, 0.0, flyer.VY)

	eb.Update(flyer, 0.5, platforms, nil)
	assert.Equal(t, 398.5, flyer.X)
	assert.InDelta(t, 100+math.Sin(1)*2+math.Sin(2)*2, flyer.Y, 1e-9)

	eb.Update(flyer, 0.5, platforms, nil)
	yBeforeFlip := flyer.Y

	eb.Update(flyer, 0.5, platforms, nil)
	assert.Equal(t, 0.0, flyer.MoveTimer)
	assert.Equal(t, 1.5, flyer.VX)
	assert.Equal(t, 1, flyer.Direction)
	assert.InDelta(t, yBeforeFlip, flyer.Y, 1e-9)
}

func TestEnemyBehavior_Jumper(t *testing.T) {
	t.Run("hops toward a nearby player", func(t *testing.T) {
		eb := NewEnemyBehavior(createTestPhysicsConfig())
		jumper := entity.NewEnemy(200, 555, 35, 45, entity.BehaviorJumper, 0)
		player := createTestPlayer(300, 540)

		for i := 0; i < 3; i++ {
			eb.Update(jumper, 1.0, nil, player)
			require.True(t, jumper.OnGround)
			require.Equal(t, 0.0, jumper.VX)
		}

		eb.Update(jumper, 1.0, nil, player)
		assert.Equal(t, -8.0, jumper.VY)
		assert.Equal(t, 2.0, jumper.VX)
		assert.Equal(t, 1, jumper.Direction)
		assert.False(t, jumper.OnGround)
		assert.Equal(t, 0.0, jumper.JumpTimer)

		eb.Update(jumper, 1.0, nil, player)
		assert.Less(t, jumper.Y, 555.0)
		assert.Equal(t, 202.0, jumper.X)
	})

	t.Run("hops in place when the player is far", func(t *testing.T) {
		eb := NewEnemyBehavior(createTestPhysicsConfig())
		jumper := entity.NewEnemy(200, 555, 35, 45, entity.BehaviorJumper, 0)
		player := createTestPlayer(700, 540)

		for i := 0; i < 4; i++ {
			eb.Update(jumper, 1.0, nil, player)
		}

		assert.Equal(t, -8.0, jumper.VY)
		assert.Equal(t, 0.0, jumper.VX)
		assert.Equal(t, -1, jumper.Direction)
	})

	t.Run("landing stops horizontal motion", func(t *testing.T) {
		eb := NewEnemyBehavior(createTestPhysicsConfig())
		platforms := []entity.Platform{entity.NewPlatform(0, 400, 800, 20, entity.PlatformNormal)}
		jumper := entity.NewEnemy(100, 354, 35, 45, entity.BehaviorJumper, 0)
		jumper.VX = 2
		jumper.VY = 2

		eb.Update(jumper, testDT, platforms, nil)

		assert.Equal(t, 355.0, jumper.Y)
		assert.Equal(t, 0.0, jumper.VY)
		assert.Equal(t, 0.0, jumper.VX)
		assert.True(t, jumper.OnGround)
	})
}

func TestEnemyBehavior_Defeated(t *testing.T) {
	eb := NewEnemyBehavior(createTestPhysicsConfig())
	walker := createTestWalker(100, 560)
	walker.Defeat()

	eb.Update(walker, 0.3, nil, nil)
	assert.True(t, walker.Active)
	assert.Equal(t, 100.0, walker.X)
	assert.Equal(t, 560.0, walker.Y)

	eb.Update(walker, 0.3, nil, nil)
	assert.False(t, walker.Active)

	// Inactive enemies are not touched
	eb.Update(walker, 0.3, nil, nil)
	assert.InDelta(t, 0.6, walker.DefeatElapsed, 1e-9)
	assert.Equal(t, 100.0, walker.X)
}

func TestEnemyBehavior_StaysInStage(t *testing.T) {
	cfg := createTestPhysicsConfig()
	eb := NewEnemyBehavior(cfg)
	rng := rand.New(rand.NewSource(11))
	behaviors := []entity.BehaviorType{entity.BehaviorWalker, entity.BehaviorFlyer, entity.BehaviorJumper}

	for i := 0; i < 300; i++ {
		e := entity.NewEnemy(rng.Float64()*1000-100, rng.Float64()*800-100, 40, 40, behaviors[i%3], rng.Float64()*20-10)
		e.VY = rng.Float64()*20 - 10
		e.OnGround = rng.Intn(2) == 0

		for tick := 0; tick < 5; tick++ {
			eb.Update(e, testDT, nil, nil)

			require.GreaterOrEqual(t, e.X, 0.0)
			require.LessOrEqual(t, e.X+e.W, cfg.Stage.Width)
			require.GreaterOrEqual(t, e.Y, 0.0)
			require.LessOrEqual(t, e.Y+e.H, cfg.Stage.Height)
		}
	}
}
