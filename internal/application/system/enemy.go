package system

import (
	"math"

	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// EnemyBehavior advances enemies according to their behavior type
type EnemyBehavior struct {
	config *config.PhysicsConfig
}

// NewEnemyBehavior creates a new enemy behavior system
func NewEnemyBehavior(cfg *config.PhysicsConfig) *EnemyBehavior {
	return &EnemyBehavior{config: cfg}
}

// InitialSpeed returns the horizontal speed an enemy of the given
// behavior spawns with. Walkers start moving left, the others idle.
func (s *EnemyBehavior) InitialSpeed(b entity.BehaviorType) float64 {
	if b == entity.BehaviorWalker {
		return -s.config.Enemy.Walker.Speed
	}
	return 0
}

// Update advances one enemy by one tick.
// player may be nil; jumpers then never aim their hop.
func (s *EnemyBehavior) Update(e *entity.Enemy, dt float64, platforms []entity.Platform, player *entity.Player) {
	if !e.Active {
		return
	}

	if e.Defeated {
		e.DefeatElapsed += dt
		if e.DefeatElapsed >= s.config.Enemy.DefeatDuration {
			e.Active = false
		}
		return
	}

	prevX, prevY := e.X, e.Y

	if e.Behavior != entity.BehaviorFlyer {
		e.VY += s.config.Enemy.Gravity
	}
	e.X += e.VX
	e.Y += e.VY

	switch e.Behavior {
	case entity.BehaviorWalker:
		s.updateWalker(e, prevX, prevY, platforms)
	case entity.BehaviorFlyer:
		s.updateFlyer(e, dt, prevY)
	case entity.BehaviorJumper:
		s.updateJumper(e, dt, prevX, prevY, platforms, player)
	}

	s.clampToStage(e)
}

// updateWalker patrols platforms and turns at walls and ledges.
// Side and vertical corrections are tested independently, so a corner
// hit can apply both in the same tick.
func (s *EnemyBehavior) updateWalker(e *entity.Enemy, prevX, prevY float64, platforms []entity.Platform) {
	walker := s.config.Enemy.Walker
	slop := s.config.Collision.EnemySlop

	onGround := false
	aboutToFall := true

	for i := range platforms {
		r := platforms[i].Rect

		// Standing on r: horizontal overlap and feet within tolerance of its top
		if e.X+e.W > r.X && e.X < r.Right() && math.Abs(e.Bounds().Bottom()-r.Y) < walker.GroundTolerance {
			onGround = true

			ahead := e.X + e.W + walker.LookAhead
			if e.VX < 0 {
				ahead = e.X - walker.LookAhead
			}
			if ahead >= r.X && ahead <= r.Right() {
				aboutToFall = false
			}
		}

		if !entity.Overlaps(e.Bounds(), r) {
			continue
		}

		if fromLeft(prevX, e.W, r, slop) || fromRight(prevX, r, slop) {
			reverse(e)
			e.X = prevX
		}

		if fromAbove(prevY, e.H, r, slop) && e.VY > 0 {
			e.Y = r.Y - e.H
			e.VY = 0
			onGround = true
		} else if fromBelow(prevY, r, slop) && e.VY < 0 {
			e.Y = r.Bottom()
			e.VY = 0
		}
	}

	if onGround && aboutToFall {
		reverse(e)
	}
	e.OnGround = onGround
}

// updateFlyer drifts horizontally, flips on a timer and bobs around its
// previous height. Flyers ignore platforms.
func (s *EnemyBehavior) updateFlyer(e *entity.Enemy, dt, prevY float64) {
	flyer := s.config.Enemy.Flyer

	e.MoveTimer += dt
	if e.MoveTimer >= flyer.FlipInterval {
		e.MoveTimer = 0
		reverse(e)
	}

	e.Y = prevY + math.Sin(e.MoveTimer*flyer.BobFrequency)*flyer.BobAmplitude

	if e.VX == 0 {
		e.VX = float64(e.Direction) * flyer.Speed
	}
}

// updateJumper hops periodically, toward the player when it is close
func (s *EnemyBehavior) updateJumper(e *entity.Enemy, dt, prevX, prevY float64, platforms []entity.Platform, player *entity.Player) {
	jumper := s.config.Enemy.Jumper
	slop := s.config.Collision.EnemySlop

	if e.OnGround {
		e.JumpTimer += dt
		if e.JumpTimer >= jumper.Interval {
			e.JumpTimer = 0
			e.VY = jumper.Force
			e.OnGround = false

			if player != nil && math.Abs(e.X-player.X) < jumper.Range {
				if player.X < e.X {
					e.Direction = -1
				} else {
					e.Direction = 1
				}
				e.VX = float64(e.Direction) * jumper.HopSpeed
			}
		}
	}

	e.OnGround = false
	for i := range platforms {
		r := platforms[i].Rect
		if !entity.Overlaps(e.Bounds(), r) {
			continue
		}

		switch {
		case fromAbove(prevY, e.H, r, slop) && e.VY > 0:
			e.Y = r.Y - e.H
			e.VY = 0
			e.VX = 0
			e.OnGround = true
		case fromBelow(prevY, r, slop) && e.VY < 0:
			e.Y = r.Bottom()
			e.VY = 0
		case fromLeft(prevX, e.W, r, slop) || fromRight(prevX, r, slop):
			reverse(e)
			e.X = prevX
		}
	}
}

// clampToStage keeps the enemy inside the stage.
// A side bound reverses the enemy only while it is moving into it.
func (s *EnemyBehavior) clampToStage(e *entity.Enemy) {
	stage := s.config.Stage

	if e.X < 0 {
		e.X = 0
		if e.VX < 0 {
			reverse(e)
		}
	}
	if e.X+e.W > stage.Width {
		e.X = stage.Width - e.W
		if e.VX > 0 {
			reverse(e)
		}
	}
	if e.Y < 0 {
		e.Y = 0
		if e.VY < 0 {
			e.VY = 0
		}
	}
	if e.Y+e.H > stage.Height {
		e.Y = stage.Height - e.H
		if e.VY > 0 {
			e.VY = 0
		}
		// A jumper launching off the floor keeps its upward velocity
		if e.VY == 0 {
			e.OnGround = true
		}
	}
}

func reverse(e *entity.Enemy) {
	e.VX = -e.VX
	e.Direction = -e.Direction
}
