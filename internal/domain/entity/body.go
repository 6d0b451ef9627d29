package entity

// Rect is an axis-aligned bounding box in pixel space.
// X, Y is the top-left corner; W and H are always positive.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether a and b intersect with positive area.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Body is the physical part of every moving entity.
// Velocities are in pixels per tick.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Active bool
}

// NewBody creates an active body at the given position
func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h, Active: true}
}

// Bounds returns the body's bounding box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Player represents the player entity
type Player struct {
	Body

	Lives    int
	MaxLives int
	Score    int

	Grounded  bool
	Direction int // 1 right, -1 left

	Invulnerable        bool
	InvulnerableElapsed float64

	SpawnX, SpawnY float64
}

// NewPlayer creates a new player at the spawn point
func NewPlayer(x, y, w, h float64, lives int) *Player {
	return &Player{
		Body:      NewBody(x, y, w, h),
		Lives:     lives,
		MaxLives:  lives,
		Direction: 1,
		SpawnX:    x,
		SpawnY:    y,
	}
}

// IsGameOver returns true once the player has no lives left
func (p *Player) IsGameOver() bool {
	return p.Lives <= 0
}
