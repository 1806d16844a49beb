package mat

import (
	"math"
)

const (
	Pi      = math.Pi
	TwoPi   = 2 * math.Pi
	PiOver2 = math.Pi / 2
	PiOver4 = math.Pi / 4

	// Epsilon is the absolute tolerance of FloatEqual.
	Epsilon = 1e-5
)

// FloatEqual reports whether a and b differ by at most Epsilon.
// NaN is never equal to anything, itself included.
func FloatEqual(a, b float32) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Epsilon
}

func ToRadians(deg float32) float32 {
	return deg * (Pi / 180)
}

func ToDegrees(rad float32) float32 {
	return rad * (180 / Pi)
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func sincos(ang float32) (float32, float32) {
	s, c := math.Sincos(float64(ang))
	return float32(s), float32(c)
}

func tan(ang float32) float32 {
	return float32(math.Tan(float64(ang)))
}
