package ocean

import "math"

// Fast trig approximations for the sampling hot path. A parabola through the
// sine's zeros and extremum plus one smoothing pass keeps the absolute error
// around 1e-3, which is well below visible wave displacement noise.
const (
	twoPi = 2 * math.Pi

	sinB = 4 / math.Pi
	sinC = -4 / (math.Pi * math.Pi)
	sinP = 0.225
)

// FastSin approximates math.Sin. The argument is reduced modulo 2π into
// (-π, π] before the polynomial is applied, so arbitrarily large phases are
// safe.
func FastSin(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x > math.Pi {
		x -= twoPi
	} else if x <= -math.Pi {
		x += twoPi
	}
	y := sinB*x + sinC*x*math.Abs(x)
	return sinP*(y*math.Abs(y)-y) + y
}

// FastCos approximates math.Cos via the quarter-turn identity.
func FastCos(x float64) float64 {
	return FastSin(x + math.Pi/2)
}
