package system

import "github.com/younwookim/coinhop/internal/domain/entity"

// The approach side of a collision is decided from the mover's position
// before this tick's integration. slop absorbs sub-pixel penetration.

// fromAbove reports whether the mover's previous bottom edge was at or above the top of r
func fromAbove(prevY, h float64, r entity.Rect, slop float64) bool {
	return prevY+h <= r.Y+slop
}

// fromBelow reports whether the mover's previous top edge was at or below the bottom of r
func fromBelow(prevY float64, r entity.Rect, slop float64) bool {
	return prevY >= r.Bottom()-slop
}

// fromLeft reports whether the mover's previous right edge was left of r
func fromLeft(prevX, w float64, r entity.Rect, slop float64) bool {
	return prevX+w <= r.X+slop
}

// fromRight reports whether the mover's previous left edge was right of r
func fromRight(prevX float64, r entity.Rect, slop float64) bool {
	return prevX >= r.Right()-slop
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
