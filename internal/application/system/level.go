package system

import "github.com/younwookim/coinhop/internal/domain/entity"

// Level owns the static geometry and the collectibles and enemies of one stage
type Level struct {
	ID         string
	Name       string
	Background string

	Platforms []entity.Platform
	Coins     []*entity.Coin
	Enemies   []*entity.Enemy

	SpawnX, SpawnY float64

	enemies *EnemyBehavior
}

// NewLevel creates an empty level driven by the given enemy behavior
func NewLevel(behavior *EnemyBehavior) *Level {
	return &Level{enemies: behavior}
}

// Update advances coins and active enemies by one tick and reports
// whether every coin has been collected.
// Enemies are updated before the player, so the player sees this tick's positions.
func (l *Level) Update(dt float64, player *entity.Player) bool {
	for _, coin := range l.Coins {
		coin.Update(dt)
	}
	for _, enemy := range l.Enemies {
		if enemy.Active {
			l.enemies.Update(enemy, dt, l.Platforms, player)
		}
	}
	return l.IsComplete()
}

// IsComplete returns true when no coin is left to collect
func (l *Level) IsComplete() bool {
	for _, coin := range l.Coins {
		if coin.Active {
			return false
		}
	}
	return true
}

// RemainingCoins counts the coins still to collect
func (l *Level) RemainingCoins() int {
	n := 0
	for _, coin := range l.Coins {
		if coin.Active {
			n++
		}
	}
	return n
}

// Reset restores every coin and enemy to its initial state
func (l *Level) Reset() {
	for _, coin := range l.Coins {
		coin.Reset()
	}
	for _, enemy := range l.Enemies {
		enemy.Reset(l.enemies.InitialSpeed(enemy.Behavior))
	}
}
