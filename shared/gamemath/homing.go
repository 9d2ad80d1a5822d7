package gamemath

import "math"

// CalculateHomingVelocity returns a velocity of the given speed toward target.
func CalculateHomingVelocity(from, target Vec2, speed float64) Vec2 {
	return target.Sub(from).Normalize().Scale(speed)
}

// SteerToward lerps the current velocity toward the homing velocity by turnRate.
// Low turn rates produce a curved pursuit instead of instant reorientation.
func SteerToward(vel, from, target Vec2, speed, turnRate float64) Vec2 {
	desired := CalculateHomingVelocity(from, target, speed)
	return vel.Lerp(desired, turnRate)
}

// CalculateBlastDamage applies linear distance falloff, floored. Zero at or past radius.
func CalculateBlastDamage(base int, dist, radius float64) int {
	if radius <= 0 || dist >= radius {
		return 0
	}
	return int(math.Floor(float64(base) * (1 - dist/radius)))
}
