package system

import "github.com/younwookim/coinhop/internal/domain/entity"

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent accelerates the player horizontally
type MoveIntent struct {
	Direction int // -1 for left, 1 for right
}

func (MoveIntent) isIntent() {}

// JumpIntent asks for a jump; it is ignored unless the player is grounded
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// Intents translates held keys into intents, in left, right, jump order.
// Holding both directions emits both moves.
func Intents(input InputState) []Intent {
	var intents []Intent
	if input.Left {
		intents = append(intents, MoveIntent{Direction: -1})
	}
	if input.Right {
		intents = append(intents, MoveIntent{Direction: 1})
	}
	if input.Jump {
		intents = append(intents, JumpIntent{})
	}
	return intents
}

// Apply executes intents against the player in order
func (s *PlayerController) Apply(p *entity.Player, intents []Intent) {
	for _, intent := range intents {
		switch it := intent.(type) {
		case MoveIntent:
			if it.Direction < 0 {
				s.MoveLeft(p)
			} else if it.Direction > 0 {
				s.MoveRight(p)
			}
		case JumpIntent:
			s.Jump(p)
		}
	}
}
