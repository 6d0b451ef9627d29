package entity

import "fmt"

// PlatformType only affects how a platform is drawn
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformGrass
	PlatformDirt
	PlatformBrick
	PlatformIce
)

// String returns the level-file name of the platform type
func (t PlatformType) String() string {
	switch t {
	case PlatformGrass:
		return "grass"
	case PlatformDirt:
		return "dirt"
	case PlatformBrick:
		return "brick"
	case PlatformIce:
		return "ice"
	default:
		return "normal"
	}
}

// ParsePlatformType maps a level-file name to a PlatformType.
// Empty and unknown names map to PlatformNormal.
func ParsePlatformType(s string) PlatformType {
	switch s {
	case "grass":
		return PlatformGrass
	case "dirt":
		return PlatformDirt
	case "brick":
		return PlatformBrick
	case "ice":
		return PlatformIce
	default:
		return PlatformNormal
	}
}

// Platform is a solid, immutable region of the level
type Platform struct {
	Rect
	Type PlatformType
}

// NewPlatform creates a platform
func NewPlatform(x, y, w, h float64, typ PlatformType) Platform {
	return Platform{Rect: Rect{X: x, Y: y, W: w, H: h}, Type: typ}
}

// Bounds is the stage rectangle [0,Width]x[0,Height]
type Bounds struct {
	Width  float64
	Height float64
}

// BehaviorType selects the enemy state machine
type BehaviorType int

const (
	BehaviorWalker BehaviorType = iota
	BehaviorFlyer
	BehaviorJumper
)

// String returns the level-file name of the behavior
func (b BehaviorType) String() string {
	switch b {
	case BehaviorWalker:
		return "walker"
	case BehaviorFlyer:
		return "flyer"
	case BehaviorJumper:
		return "jumper"
	default:
		return "unknown"
	}
}

// ParseBehaviorType maps a level-file name to a BehaviorType
func ParseBehaviorType(s string) (BehaviorType, error) {
	switch s {
	case "walker":
		return BehaviorWalker, nil
	case "flyer":
		return BehaviorFlyer, nil
	case "jumper":
		return BehaviorJumper, nil
	default:
		return 0, fmt.Errorf("unknown enemy type %q", s)
	}
}
