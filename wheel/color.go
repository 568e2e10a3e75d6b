package wheel

import "math"

// RGB is an 8-bit device color. Colors are value types; gameplay code
// replaces them wholesale and never mutates channels in place.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// Lab is a color in CIE L*a*b* space, derived on demand from an RGB color
// and never stored.
type Lab struct {
	L, A, B float64
}

// D65 reference white.
const (
	refX = 0.95047
	refY = 1.0
	refZ = 1.08883
)

// srgbToLinear undoes the sRGB gamma curve for one normalized channel.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// labF is the CIE nonlinearity applied per XYZ channel.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// Lab converts the color through linear sRGB and XYZ to CIE L*a*b*,
// normalized against the D65 white point. Defined for all inputs.
func (c RGB) Lab() Lab {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)

	x := (r*0.4124 + g*0.3576 + b*0.1805) / refX
	y := (r*0.2126 + g*0.7152 + b*0.0722) / refY
	z := (r*0.0193 + g*0.1192 + b*0.9505) / refZ

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}
