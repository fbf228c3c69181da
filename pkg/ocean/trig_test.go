package ocean

import (
	"math"
	"testing"
)

func TestFastSinAnchors(t *testing.T) {
	if got := FastSin(0); got != 0 {
		t.Fatalf("FastSin(0) = %v, want 0", got)
	}
	if got := FastSin(math.Pi / 2); math.Abs(got-1) > 1e-12 {
		t.Fatalf("FastSin(π/2) = %v, want 1", got)
	}
	if got := FastCos(0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("FastCos(0) = %v, want 1", got)
	}
	if got := FastSin(math.Pi); math.Abs(got) > 1e-12 {
		t.Fatalf("FastSin(π) = %v, want 0", got)
	}
}

func TestFastSinPeriodicity(t *testing.T) {
	for _, x := range []float64{-123.456, -3.2, -0.5, 0.5, 1.0, 7.7, 42.0, 9999.25} {
		a := FastSin(x)
		b := FastSin(x + 2*math.Pi)
		if math.Abs(a-b) > 1e-9 {
			t.Fatalf("FastSin(%v)=%v differs from FastSin(x+2π)=%v", x, a, b)
		}
	}
}

func TestFastSinBoundedError(t *testing.T) {
	const steps = 10000
	worst := 0.0
	for i := 0; i <= steps; i++ {
		x := -4*math.Pi + 8*math.Pi*float64(i)/steps
		err := math.Abs(FastSin(x) - math.Sin(x))
		if err > worst {
			worst = err
		}
	}
	if worst > 5e-3 {
		t.Fatalf("worst FastSin error %v exceeds 5e-3", worst)
	}
}

func TestFastCosBoundedError(t *testing.T) {
	const steps = 10000
	for i := 0; i <= steps; i++ {
		x := -4*math.Pi + 8*math.Pi*float64(i)/steps
		if err := math.Abs(FastCos(x) - math.Cos(x)); err > 5e-3 {
			t.Fatalf("FastCos(%v) error %v exceeds 5e-3", x, err)
		}
	}
}
