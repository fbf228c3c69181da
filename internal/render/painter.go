//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// WavePainter updates a single RGBA image from sampled surface heights.
type WavePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewWavePainter allocates a painter for a height lattice of size w*h.
func NewWavePainter(w, h int) *WavePainter {
	p := &WavePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit color-maps the heights against peak, uploads the pixels and draws the
// image into dst at the given integer scale.
func (p *WavePainter) Blit(dst *ebiten.Image, heights []float64, peak float64, scale int) {
	if len(heights) != p.w*p.h {
		return
	}
	fillHeightRGBA(p.buf, heights, peak)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *WavePainter) Size() (int, int) { return p.w, p.h }
