package math

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Smoothstep returns the C1-continuous ease 3t^2 - 2t^3 of t clamped to [0, 1].
func Smoothstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Gauss returns exp(-x^2 / (2*sigma^2)), the unnormalized Gaussian falloff.
func Gauss(x, sigma float32) float32 {
	if sigma <= 0 {
		return 0
	}
	e := float64(x*x) / float64(2*sigma*sigma)
	return float32(math.Exp(-e))
}

// Sin returns sin(x) for float32.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns cos(x) for float32.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
