package wheel

import (
	"math"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
)

// Oversample is the ratio between the wheel's backing resolution and its
// on-screen size in CSS pixels, giving the sampler sub-pixel precision.
const Oversample = 2

// hueStep is the per-degree channel increment of the hue walk.
const hueStep = 4.322

// hueRing returns the 360 edge colors of the wheel. A three-channel
// accumulator starts at (0,0,255) with the pivot on red. Each degree the
// pivot channel ramps up to 255; once full, the channel cyclically behind
// the pivot ramps down to 0; once both are done the pivot advances. The
// walk covers the whole hue circle without any HSL math.
func hueRing() [360]RGB {
	var ring [360]RGB
	acc := [3]float64{0, 0, 255}
	pivot := 0
	for deg := 0; deg < 360; deg++ {
		prev := (pivot + 2) % 3
		switch {
		case acc[pivot] < 255:
			acc[pivot] += hueStep
			if acc[pivot] > 255 {
				acc[pivot] = 255
			}
		case acc[prev] > 0:
			acc[prev] -= hueStep
			if acc[prev] < 0 {
				acc[prev] = 0
			}
		default:
			acc[pivot] = 255
			pivot = (pivot + 1) % 3
		}
		ring[deg] = RGB{R: uint8(acc[0]), G: uint8(acc[1]), B: uint8(acc[2])}
	}
	return ring
}

// Paint renders the radial hue wheel onto s at Oversample times the given
// CSS-pixel size. When the backing resolution already matches, Paint is a
// no-op, so callers may invoke it every frame.
//
// Every pixel inside the disc gets the radial gradient running from white at
// the center to the ring color at its integer degree on the edge; this is
// the flattened result of the original's 360 overlapping wedge sweeps, where
// each later wedge overpaints the earlier ones. Pixels outside the disc stay
// black, which the sampler treats as unpainted.
func Paint(s Surface, size int) {
	target := size * Oversample
	if w, h := s.Resolution(); w == target && h == target {
		return
	}
	s.Resize(target, target)
	if target <= 0 {
		return
	}

	ring := hueRing()
	radius := float64(target) / 2

	// Rows are independent; split them across the CPUs.
	workers := runtime.NumCPU()
	band := (target + workers - 1) / workers
	swg := sizedwaitgroup.New(workers)
	for y0 := 0; y0 < target; y0 += band {
		y1 := y0 + band
		if y1 > target {
			y1 = target
		}
		swg.Add()
		go func(y0, y1 int) {
			defer swg.Done()
			paintRows(s, &ring, radius, target, y0, y1)
		}(y0, y1)
	}
	swg.Wait()
}

func paintRows(s Surface, ring *[360]RGB, radius float64, size, y0, y1 int) {
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - radius
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - radius
			dist := math.Hypot(dx, dy)
			if dist > radius {
				continue
			}
			ang := math.Atan2(dy, dx) * 180 / math.Pi
			if ang < 0 {
				ang += 360
			}
			deg := int(ang)
			if deg > 359 {
				deg = 359
			}
			edge := ring[deg]
			t := dist / radius
			s.SetPixel(x, y, RGB{
				R: lerpChannel(edge.R, t),
				G: lerpChannel(edge.G, t),
				B: lerpChannel(edge.B, t),
			})
		}
	}
}

// lerpChannel blends one channel from white at t=0 toward the edge value at
// t=1.
func lerpChannel(edge uint8, t float64) uint8 {
	return uint8(math.Round(255 + (float64(edge)-255)*t))
}
