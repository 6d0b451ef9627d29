package entity

// Enemy represents an enemy entity
type Enemy struct {
	Body

	Behavior  BehaviorType
	Direction int // -1 left, 1 right
	OnGround  bool

	Defeated      bool
	DefeatElapsed float64

	// Per-behavior timers (seconds)
	MoveTimer float64 // flyer direction flip
	JumpTimer float64 // jumper hop

	SpawnX, SpawnY float64
}

// NewEnemy creates an enemy facing left.
// vx is the initial horizontal speed (walkers start moving, others idle).
func NewEnemy(x, y, w, h float64, behavior BehaviorType, vx float64) *Enemy {
	e := &Enemy{
		Body:      NewBody(x, y, w, h),
		Behavior:  behavior,
		Direction: -1,
		SpawnX:    x,
		SpawnY:    y,
	}
	e.VX = vx
	return e
}

// Defeat enters the defeated sub-state. Calling it again has no effect.
func (e *Enemy) Defeat() {
	if e.Defeated {
		return
	}
	e.Defeated = true
	e.DefeatElapsed = 0
	e.VX = 0
	e.VY = 0
}

// IsHostile returns true if the enemy can still interact with the player
func (e *Enemy) IsHostile() bool {
	return e.Active && !e.Defeated
}

// Reset restores the enemy to its spawn state with the given initial speed
func (e *Enemy) Reset(vx float64) {
	e.X = e.SpawnX
	e.Y = e.SpawnY
	e.VX = vx
	e.VY = 0
	e.Active = true
	e.Defeated = false
	e.DefeatElapsed = 0
	e.Direction = -1
	e.OnGround = false
	e.MoveTimer = 0
	e.JumpTimer = 0
}
