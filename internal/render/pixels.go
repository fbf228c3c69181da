package render

import "image/color"

// Water gradient anchors: trough, rest level, crest.
var (
	troughColor = color.RGBA{R: 12, G: 36, B: 74, A: 255}
	restColor   = color.RGBA{R: 52, G: 110, B: 170, A: 255}
	crestColor  = color.RGBA{R: 228, G: 240, B: 248, A: 255}
)

// fillHeightRGBA writes one RGBA pixel per height into buf. Heights are
// normalized against peak so that -peak maps to the trough color, 0 to the
// rest color and +peak to the crest color; values outside ±peak clamp.
// buf must hold 4*len(heights) bytes.
func fillHeightRGBA(buf []byte, heights []float64, peak float64) {
	if peak <= 0 {
		peak = 1
	}
	for i, h := range heights {
		v := h / peak
		if v < -1 {
			v = -1
		} else if v > 1 {
			v = 1
		}

		var c color.RGBA
		if v < 0 {
			c = lerpRGBA(restColor, troughColor, -v)
		} else {
			c = lerpRGBA(restColor, crestColor, v)
		}

		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// lerpRGBA interpolates between two colors with t in [0, 1].
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
