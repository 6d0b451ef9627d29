package playing

import (
	"fmt"
	"image/color"

	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{135, 206, 235, 255}
	colorPlayer      = color.RGBA{255, 69, 0, 255}
	colorPlayerEye   = color.RGBA{255, 255, 255, 255}
	colorCoin        = color.RGBA{255, 215, 0, 255}
	colorCoinShine   = color.RGBA{255, 248, 180, 255}
	colorGrassTop    = color.RGBA{102, 187, 106, 255}
	colorIceShine    = color.RGBA{255, 255, 255, 110}
	colorBrickMortar = color.RGBA{139, 0, 0, 255}
	colorEnemy       = color.RGBA{139, 0, 0, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 128}
	colorGameOver    = color.RGBA{100, 0, 0, 180}
	colorComplete    = color.RGBA{0, 80, 0, 180}
)

var platformColors = map[entity.PlatformType]color.RGBA{
	entity.PlatformNormal: {139, 69, 19, 255},
	entity.PlatformGrass:  {76, 175, 80, 255},
	entity.PlatformDirt:   {139, 69, 19, 255},
	entity.PlatformBrick:  {178, 34, 34, 255},
	entity.PlatformIce:    {135, 206, 235, 255},
}

// palette holds the per-level colors resolved from config
type palette struct {
	background color.RGBA
	enemies    map[entity.BehaviorType]color.RGBA
}

func newPalette(ents *config.EntitiesConfig, background string) palette {
	p := palette{
		background: colorBG,
		enemies:    make(map[entity.BehaviorType]color.RGBA),
	}
	if c, err := parseHexColor(background); err == nil {
		p.background = c
	}
	for name, ec := range ents.Enemies {
		b, err := entity.ParseBehaviorType(name)
		if err != nil {
			continue
		}
		c, err := parseHexColor(ec.Color)
		if err != nil {
			c = colorEnemy
		}
		p.enemies[b] = c
	}
	return p
}

func (p palette) enemy(b entity.BehaviorType) color.RGBA {
	if c, ok := p.enemies[b]; ok {
		return c
	}
	return colorEnemy
}

// parseHexColor parses "#RRGGBB"
func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
