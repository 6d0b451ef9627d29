package system

import (
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// PlayerController runs player physics and the player's interactions
// with platforms, coins and enemies.
type PlayerController struct {
	config *config.PhysicsConfig

	// Event callbacks
	OnScoreChanged  func(score int)
	OnLivesChanged  func(lives int)
	OnGameOver      func()
	OnCoinCollected func(coin *entity.Coin)
	OnEnemyDefeated func(enemy *entity.Enemy)
}

// NewPlayerController creates a new player controller
func NewPlayerController(cfg *config.PhysicsConfig) *PlayerController {
	return &PlayerController{config: cfg}
}

// MoveLeft accelerates the player to the left and faces it left
func (s *PlayerController) MoveLeft(p *entity.Player) {
	if !p.Active {
		return
	}
	p.VX -= s.config.Movement.Acceleration
	p.Direction = -1
}

// MoveRight accelerates the player to the right and faces it right
func (s *PlayerController) MoveRight(p *entity.Player) {
	if !p.Active {
		return
	}
	p.VX += s.config.Movement.Acceleration
	p.Direction = 1
}

// Jump launches the player if it is standing on something
func (s *PlayerController) Jump(p *entity.Player) {
	if !p.Active || !p.Grounded {
		return
	}
	p.VY = s.config.Jump.Force
	p.Grounded = false
}

// Reset puts the player back at its spawn point with full lives and no score
func (s *PlayerController) Reset(p *entity.Player) {
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.VX = 0
	p.VY = 0
	p.Active = true
	p.Lives = p.MaxLives
	p.Score = 0
	p.Grounded = false
	p.Direction = 1
	p.Invulnerable = false
	p.InvulnerableElapsed = 0

	if s.OnScoreChanged != nil {
		s.OnScoreChanged(p.Score)
	}
	if s.OnLivesChanged != nil {
		s.OnLivesChanged(p.Lives)
	}
}

// Update advances the player by one tick.
// dt only drives the invulnerability timer; physics is per tick.
func (s *PlayerController) Update(p *entity.Player, dt float64, platforms []entity.Platform, coins []*entity.Coin, enemies []*entity.Enemy) {
	if !p.Active {
		return
	}

	prevX, prevY := p.X, p.Y
	// The timer starts counting on the tick after the hit
	wasInvulnerable := p.Invulnerable

	s.integrate(p)
	s.resolvePlatforms(p, prevX, prevY, platforms)
	s.collectCoins(p, coins)
	s.checkEnemies(p, prevY, enemies)

	if wasInvulnerable {
		s.updateInvulnerability(p, dt)
	}

	s.clampToStage(p)
}

// Hurt takes one life, starts the invulnerability window and knocks the player back.
// Returns false if the player could not be hurt.
func (s *PlayerController) Hurt(p *entity.Player) bool {
	if p.Invulnerable || p.Lives <= 0 {
		return false
	}

	p.Lives--
	p.Invulnerable = true
	p.InvulnerableElapsed = 0

	p.VY = s.config.Jump.Force / s.config.Combat.Knockback.UpDivisor
	p.VX = float64(-p.Direction) * s.config.Combat.Knockback.Speed

	if s.OnLivesChanged != nil {
		s.OnLivesChanged(p.Lives)
	}
	if p.Lives <= 0 && s.OnGameOver != nil {
		s.OnGameOver()
	}
	return true
}

// integrate applies gravity and friction, clamps speed and moves the player
func (s *PlayerController) integrate(p *entity.Player) {
	phys := s.config.Physics

	p.VY += phys.Gravity
	p.VX *= phys.Friction

	p.VX = clamp(p.VX, -phys.MaxSpeedX, phys.MaxSpeedX)
	p.VY = clamp(p.VY, -phys.MaxSpeedY, phys.MaxSpeedY)

	p.X += p.VX
	p.Y += p.VY
}

// resolvePlatforms pushes the player out of overlapped platforms.
// Only one face is resolved per platform, vertical faces first.
func (s *PlayerController) resolvePlatforms(p *entity.Player, prevX, prevY float64, platforms []entity.Platform) {
	slop := s.config.Collision.PlayerSlop

	p.Grounded = false
	for i := range platforms {
		r := platforms[i].Rect
		if !entity.Overlaps(p.Bounds(), r) {
			continue
		}

		switch {
		case fromAbove(prevY, p.H, r, slop) && p.VY > 0:
			p.Y = r.Y - p.H
			p.VY = 0
			p.Grounded = true
		case fromBelow(prevY, r, slop) && p.VY < 0:
			p.Y = r.Bottom()
			p.VY = 0
		case fromLeft(prevX, p.W, r, slop) && p.VX > 0:
			p.X = r.X - p.W
			p.VX = 0
		case fromRight(prevX, r, slop) && p.VX < 0:
			p.X = r.Right()
			p.VX = 0
		}
	}
}

func (s *PlayerController) collectCoins(p *entity.Player, coins []*entity.Coin) {
	for _, coin := range coins {
		if !coin.Active || !entity.Overlaps(p.Bounds(), coin.Bounds()) {
			continue
		}
		if !coin.Collect() {
			continue
		}
		s.addScore(p, s.config.Scoring.Coin)
		if s.OnCoinCollected != nil {
			s.OnCoinCollected(coin)
		}
	}
}

// checkEnemies resolves stomps and contact damage.
// Stomps are allowed while invulnerable, damage is not.
func (s *PlayerController) checkEnemies(p *entity.Player, prevY float64, enemies []*entity.Enemy) {
	slop := s.config.Collision.PlayerSlop

	for _, enemy := range enemies {
		if !enemy.IsHostile() || !entity.Overlaps(p.Bounds(), enemy.Bounds()) {
			continue
		}

		if fromAbove(prevY, p.H, enemy.Bounds(), slop) && p.VY > 0 {
			enemy.Defeat()
			p.VY = s.config.Jump.Force / s.config.Jump.StompBounceDivisor
			s.addScore(p, s.config.Scoring.Stomp)
			if s.OnEnemyDefeated != nil {
				s.OnEnemyDefeated(enemy)
			}
			continue
		}

		if !p.Invulnerable {
			s.Hurt(p)
		}
	}
}

func (s *PlayerController) updateInvulnerability(p *entity.Player, dt float64) {
	if !p.Invulnerable {
		return
	}
	p.InvulnerableElapsed += dt
	if p.InvulnerableElapsed >= s.config.Combat.Invulnerability {
		p.Invulnerable = false
		p.InvulnerableElapsed = 0
	}
}

// clampToStage keeps the player inside the stage.
// The floor grounds the player; the sides only clamp position.
func (s *PlayerController) clampToStage(p *entity.Player) {
	stage := s.config.Stage

	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.W > stage.Width {
		p.X = stage.Width - p.W
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}
	if p.Y+p.H > stage.Height {
		p.Y = stage.Height - p.H
		p.VY = 0
		p.Grounded = true
	}
}

func (s *PlayerController) addScore(p *entity.Player, points int) {
	p.Score += points
	if s.OnScoreChanged != nil {
		s.OnScoreChanged(p.Score)
	}
}
