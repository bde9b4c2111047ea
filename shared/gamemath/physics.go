package gamemath

// Decay multiplies speed by factor and snaps to zero once |speed| drops
// below snap. A snap of 0 disables snapping.
func Decay(speed, factor, snap float64) float64 {
	speed *= factor
	if snap > 0 && Abs(speed) < snap {
		return 0
	}
	return speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Abs returns |x|.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Direction returns 1 when facing right, -1 otherwise.
func Direction(facingRight bool) float64 {
	if facingRight {
		return 1
	}
	return -1
}

// AwayFrom returns the horizontal direction pushing x away from sourceX.
// A source directly on top pushes right.
func AwayFrom(x, sourceX float64) float64 {
	if x < sourceX {
		return -1
	}
	return 1
}
