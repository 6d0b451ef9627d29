package system

import "github.com/younwookim/coinhop/internal/domain/entity"

// StepResult reports the round state after a tick
type StepResult struct {
	LevelComplete bool
	GameOver      bool
}

// World ties a level, the player and the player controller together and
// advances them in a fixed order: input, enemies and coins, then the player.
type World struct {
	Level      *Level
	Player     *entity.Player
	Controller *PlayerController

	Frame int
}

// NewWorld creates a world and places the player at the level spawn
func NewWorld(level *Level, player *entity.Player, controller *PlayerController) *World {
	w := &World{
		Level:      level,
		Player:     player,
		Controller: controller,
	}
	player.SpawnX = level.SpawnX
	player.SpawnY = level.SpawnY
	return w
}

// Step advances the simulation by one tick
func (w *World) Step(dt float64, input InputState) StepResult {
	w.Controller.Apply(w.Player, Intents(input))
	complete := w.Level.Update(dt, w.Player)
	w.Controller.Update(w.Player, dt, w.Level.Platforms, w.Level.Coins, w.Level.Enemies)
	w.Frame++

	if !complete {
		complete = w.Level.IsComplete()
	}
	return StepResult{
		LevelComplete: complete,
		GameOver:      w.Player.IsGameOver(),
	}
}

// Reset restores the level and the player to their initial state
func (w *World) Reset() {
	w.Level.Reset()
	w.Player.SpawnX = w.Level.SpawnX
	w.Player.SpawnY = w.Level.SpawnY
	w.Controller.Reset(w.Player)
	w.Frame = 0
}
