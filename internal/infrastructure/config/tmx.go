package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX stages
const (
	tmxPlatforms = "platforms"
	tmxCoins     = "coins"
	tmxEnemies   = "enemies"
	tmxSpawn     = "spawn"
)

// loadTMXLevel converts the object groups of a Tiled map into a LevelConfig.
// Object type carries the platform or enemy type.
func loadTMXLevel(fsys fs.FS, p string) (*LevelConfig, error) {
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", p, err)
	}

	id := strings.TrimSuffix(path.Base(p), path.Ext(p))
	cfg := &LevelConfig{ID: id, Name: id}

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case tmxPlatforms:
				cfg.Platforms = append(cfg.Platforms, PlatformConfig{
					X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Type: o.Type,
				})
			case tmxCoins:
				cfg.Coins = append(cfg.Coins, PositionConfig{X: o.X, Y: o.Y})
			case tmxEnemies:
				cfg.Enemies = append(cfg.Enemies, EnemySpawnConfig{Type: o.Type, X: o.X, Y: o.Y})
			case tmxSpawn:
				cfg.PlayerSpawn = PositionConfig{X: o.X, Y: o.Y}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", p, err)
	}
	return cfg, nil
}
