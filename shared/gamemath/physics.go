package gamemath

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToArena keeps p at least margin away from every edge of a w x h arena.
func ClampToArena(p Vec2, w, h, margin float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, margin, w-margin),
		Y: Clamp(p.Y, margin, h-margin),
	}
}

// InArena reports whether p lies inside the margin-inset arena.
func InArena(p Vec2, w, h, margin float64) bool {
	return p.X >= margin && p.X <= w-margin && p.Y >= margin && p.Y <= h-margin
}

// CalculateMoveDirection returns a normalized direction from 4-way input.
func CalculateMoveDirection(up, down, left, right bool) Vec2 {
	var d Vec2
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	return d.Normalize()
}
