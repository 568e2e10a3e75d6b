package wheel

import (
	"math/rand"
	"testing"
)

// fillSurface paints every pixel of a fresh surface with one color.
func fillSurface(w, h int, c RGB) *PixSurface {
	s := NewPixSurface(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetPixel(x, y, c)
		}
	}
	return s
}

func TestSamplePointBlackSentinel(t *testing.T) {
	s := NewPixSurface(10, 10)
	if c, ok := SamplePoint(s, 5, 5); ok {
		t.Fatalf("unpainted pixel returned %v, want no color", c)
	}
	if _, ok := SamplePoint(s, -1, 50); ok {
		t.Fatalf("out-of-bounds read returned a color")
	}
}

func TestSamplePointOnWheel(t *testing.T) {
	s := NewPixSurface(0, 0)
	Paint(s, 50)
	c, ok := SamplePoint(s, 50, 50)
	if !ok {
		t.Fatalf("wheel center returned no color")
	}
	if c.R < 250 || c.G < 250 || c.B < 250 {
		t.Fatalf("wheel center = %v, want near white", c)
	}
}

func TestSampleRandomValidPicks(t *testing.T) {
	s := NewPixSurface(0, 0)
	Paint(s, 100)
	rng := rand.New(rand.NewSource(1))

	contrast := Black
	for i := 0; i < 100; i++ {
		c := SampleRandom(s, contrast, rng)
		if c == White {
			// Exhausted-attempt fallback; degraded but valid.
			continue
		}
		if c == (RGB{}) {
			t.Fatalf("draw %d returned unpainted black", i)
		}
		if c.R > nearWhite && c.G > nearWhite && c.B > nearWhite {
			t.Fatalf("draw %d returned near-white %v", i, c)
		}
		if d := Distance(c, contrast); d < MatchThreshold {
			t.Fatalf("draw %d returned %v too close to contrast (delta %f)", i, c, d)
		}
		contrast = c
	}
}

func TestSampleRandomFallsBackOnNearWhite(t *testing.T) {
	s := fillSurface(8, 8, RGB{240, 240, 240})
	rng := rand.New(rand.NewSource(1))
	if c := SampleRandom(s, Black, rng); c != White {
		t.Fatalf("near-white surface returned %v, want white fallback", c)
	}
}

func TestSampleRandomFallsBackOnUnpainted(t *testing.T) {
	s := NewPixSurface(8, 8)
	rng := rand.New(rand.NewSource(1))
	if c := SampleRandom(s, Black, rng); c != White {
		t.Fatalf("unpainted surface returned %v, want white fallback", c)
	}
}

func TestSampleRandomFallsBackOnSimilarity(t *testing.T) {
	base := RGB{200, 30, 30}
	s := fillSurface(8, 8, base)
	rng := rand.New(rand.NewSource(1))

	// Every pixel matches the contrast color, so all attempts are rejected.
	if c := SampleRandom(s, base, rng); c != White {
		t.Fatalf("same-color surface returned %v, want white fallback", c)
	}
	// Against a distant contrast the same surface is fine.
	if c := SampleRandom(s, Black, rng); c != base {
		t.Fatalf("surface returned %v, want %v", c, base)
	}
}

func TestSampleRandomEmptySurface(t *testing.T) {
	s := NewPixSurface(0, 0)
	rng := rand.New(rand.NewSource(1))
	if c := SampleRandom(s, Black, rng); c != White {
		t.Fatalf("empty surface returned %v, want white fallback", c)
	}
}
