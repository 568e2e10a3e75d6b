package wheel

import "math/rand"

const (
	// sampleAttempts bounds the random rejection loop.
	sampleAttempts = 10
	// nearWhite is the channel floor above which a pixel blends into the
	// white wheel center and makes an unfair target.
	nearWhite = 232
)

// SamplePoint reads the single pixel at (x, y). Pure black is the sentinel
// for a point off the painted wheel and is reported as ok == false rather
// than as a valid color.
func SamplePoint(s Surface, x, y int) (RGB, bool) {
	c := s.ReadPixel(x, y)
	if c == (RGB{}) {
		return RGB{}, false
	}
	return c, true
}

// SampleRandom draws a random painted pixel that is neither near-white,
// unpainted, nor perceptually close to contrast. After ten rejected
// attempts it falls back to plain white; callers treat the fallback as a
// degraded but valid target, never as an error.
func SampleRandom(s Surface, contrast RGB, rng *rand.Rand) RGB {
	w, h := s.Resolution()
	if w <= 0 || h <= 0 {
		return White
	}
	for i := 0; i < sampleAttempts; i++ {
		c := s.ReadPixel(rng.Intn(w), rng.Intn(h))
		if c.R > nearWhite && c.G > nearWhite && c.B > nearWhite {
			continue
		}
		if c == (RGB{}) {
			continue
		}
		if Distance(c, contrast) < MatchThreshold {
			continue
		}
		return c
	}
	return White
}
