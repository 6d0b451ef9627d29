package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatformType(t *testing.T) {
	tests := []struct {
		in   string
		want PlatformType
	}{
		{"grass", PlatformGrass},
		{"dirt", PlatformDirt},
		{"brick", PlatformBrick},
		{"ice", PlatformIce},
		{"normal", PlatformNormal},
		{"", PlatformNormal},
		{"lava", PlatformNormal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePlatformType(tt.in), tt.in)
	}
}

func TestPlatformType_String(t *testing.T) {
	assert.Equal(t, "grass", PlatformGrass.String())
	assert.Equal(t, "ice", PlatformIce.String())
	assert.Equal(t, "normal", PlatformType(99).String())
}

func TestNewPlatform(t *testing.T) {
	p := NewPlatform(0, 550, 800, 50, PlatformGrass)

	assert.Equal(t, Rect{X: 0, Y: 550, W: 800, H: 50}, p.Rect)
	assert.Equal(t, PlatformGrass, p.Type)
	assert.Equal(t, 600.0, p.Bottom())
}

func TestCoin_Collect(t *testing.T) {
	coin := NewCoin(130, 410, 20, 20)
	assert.True(t, coin.Active)

	assert.True(t, coin.Collect())
	assert.True(t, coin.Collected)
	assert.False(t, coin.Active)

	snapshot := *coin
	assert.False(t, coin.Collect(), "second collect is a no-op")
	assert.Equal(t, snapshot, *coin)
}

func TestCoin_UpdateInactiveIsNoop(t *testing.T) {
	coin := NewCoin(0, 0, 20, 20)
	coin.Update(0.5)
	assert.InDelta(t, 0.5, coin.Elapsed, 1e-9)

	coin.Collect()
	coin.Update(0.5)
	assert.InDelta(t, 0.5, coin.Elapsed, 1e-9)
}

func TestCoin_Reset(t *testing.T) {
	coin := NewCoin(0, 0, 20, 20)
	coin.Collect()

	coin.Reset()

	assert.True(t, coin.Active)
	assert.False(t, coin.Collected)
}
