package wheel

// Surface is the pixel buffer the painter fills and the sampler reads. The
// renderer owns the backing memory; the game core only resizes it and
// touches pixels through this interface, and keeps no reference beyond the
// call.
type Surface interface {
	// Resolution returns the current backing size in pixels.
	Resolution() (w, h int)
	// Resize reallocates the backing buffer, discarding content. Resizing
	// to the current size keeps the buffer as is.
	Resize(w, h int)
	// SetPixel writes one opaque pixel. Out of bounds is a no-op.
	SetPixel(x, y int, c RGB)
	// ReadPixel returns the color at a pixel. Out of bounds and unpainted
	// pixels read as pure black.
	ReadPixel(x, y int) RGB
}

// PixSurface is a Surface over a packed RGBA byte slice, the layout Ebiten's
// WritePixels consumes directly. Painted pixels are opaque; everything else
// stays transparent black, which doubles as the sampler's off-wheel
// sentinel.
type PixSurface struct {
	w, h int
	pix  []byte
}

func NewPixSurface(w, h int) *PixSurface {
	s := &PixSurface{}
	s.Resize(w, h)
	return s
}

func (s *PixSurface) Resolution() (int, int) { return s.w, s.h }

// Pix exposes the raw RGBA buffer for blitting.
func (s *PixSurface) Pix() []byte { return s.pix }

func (s *PixSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == s.w && h == s.h && s.pix != nil {
		return
	}
	s.w, s.h = w, h
	s.pix = make([]byte, w*h*4)
}

func (s *PixSurface) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	i := 4 * (y*s.w + x)
	s.pix[i] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
	s.pix[i+3] = 255
}

func (s *PixSurface) ReadPixel(x, y int) RGB {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return RGB{}
	}
	i := 4 * (y*s.w + x)
	return RGB{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2]}
}
