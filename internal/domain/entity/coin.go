package entity

// Coin is a collectible. It has no physics of its own.
type Coin struct {
	Body

	Collected bool

	// Elapsed drives the cosmetic spin; it never moves the bounding box
	Elapsed float64
}

// NewCoin creates an active coin
func NewCoin(x, y, w, h float64) *Coin {
	return &Coin{Body: NewBody(x, y, w, h)}
}

// Collect marks the coin as collected. Collecting twice is a no-op.
// Returns true only on the call that actually collected it.
func (c *Coin) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	c.Active = false
	return true
}

// Update advances the cosmetic clock of an active coin
func (c *Coin) Update(dt float64) {
	if !c.Active {
		return
	}
	c.Elapsed += dt
}

// Reset makes the coin collectible again
func (c *Coin) Reset() {
	c.Collected = false
	c.Active = true
	c.Elapsed = 0
}
