package surface

import (
	"testing"

	"seastate/pkg/ocean"
)

func testField(t *testing.T) *ocean.WaveField {
	t.Helper()
	cfg := ocean.DefaultConfig()
	cfg.Seed = 314
	field, err := ocean.Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return field
}

func TestFillMatchesDirectSampling(t *testing.T) {
	field := testField(t)
	g := NewGrid(16, 12, 0.5)
	g.Fill(field, 2.5)

	for _, pt := range [][2]int{{0, 0}, {15, 0}, {0, 11}, {7, 5}, {15, 11}} {
		x, z := pt[0], pt[1]
		want := field.Sample(2.5, float64(x)*0.5, float64(z)*0.5)
		got := g.Displacements()[g.Index(x, z)]
		if got != want {
			t.Fatalf("point (%d,%d): got %+v, want %+v", x, z, got, want)
		}
		if g.Heights()[g.Index(x, z)] != want.Y {
			t.Fatalf("point (%d,%d): height %v, want %v", x, z, g.Heights()[g.Index(x, z)], want.Y)
		}
	}
}

func TestFillParallelMatchesFill(t *testing.T) {
	field := testField(t)
	serial := NewGrid(32, 24, 0.25)
	parallel := NewGrid(32, 24, 0.25)

	serial.Fill(field, 1.75)
	for _, workers := range []int{2, 3, 8, 64} {
		parallel.FillParallel(field, 1.75, workers)
		for i, want := range serial.Displacements() {
			if parallel.Displacements()[i] != want {
				t.Fatalf("workers=%d index %d: got %+v, want %+v",
					workers, i, parallel.Displacements()[i], want)
			}
		}
	}
}

func TestBuffersReusedAcrossFills(t *testing.T) {
	field := testField(t)
	g := NewGrid(8, 8, 1)

	heights := g.Heights()
	disp := g.Displacements()
	for tick := 0; tick < 5; tick++ {
		g.Fill(field, float64(tick)*0.1)
	}
	if &heights[0] != &g.Heights()[0] {
		t.Fatal("height buffer was reallocated")
	}
	if &disp[0] != &g.Displacements()[0] {
		t.Fatal("displacement buffer was reallocated")
	}
}

func TestDegenerateDimensionsClamped(t *testing.T) {
	g := NewGrid(0, -2, 0)
	w, h := g.Size()
	if w != 1 || h != 1 {
		t.Fatalf("got %dx%d, want 1x1", w, h)
	}
	g.Fill(testField(t), 0)
}
