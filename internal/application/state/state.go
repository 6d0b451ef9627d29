package state

// GameState represents the current state of a round
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateLevelComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Event drives state transitions
type Event int

const (
	EventPause Event = iota // toggles pause
	EventRestart
	EventGameOver
	EventLevelComplete
)

// Next returns the state after e. Events that do not apply leave s unchanged.
func (s GameState) Next(e Event) GameState {
	switch s {
	case StatePlaying:
		switch e {
		case EventPause:
			return StatePaused
		case EventGameOver:
			return StateGameOver
		case EventLevelComplete:
			return StateLevelComplete
		}
	case StatePaused:
		if e == EventPause {
			return StatePlaying
		}
	case StateGameOver, StateLevelComplete:
		if e == EventRestart {
			return StatePlaying
		}
	}
	return s
}

// Simulating reports whether the world should be stepped in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
