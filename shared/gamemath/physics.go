// Package gamemath holds the small numeric helpers behind player movement.
// It has no ebiten or ECS dependencies.
package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// ApplyDrag scales speed by a per-frame drag factor in [0, 1].
// Repeated calls decay speed geometrically.
func ApplyDrag(speed, drag float64) float64 {
	return speed * drag
}

// Snap rounds a coordinate to the nearest whole pixel, halves to even.
func Snap(v float64) float64 {
	return math.RoundToEven(v)
}

