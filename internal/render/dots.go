//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DotPainter draws filled points and rectangles from a shared 1x1 source
// image, which keeps per-particle draws allocation free.
type DotPainter struct {
	pixel *ebiten.Image
}

// NewDotPainter allocates the shared source pixel.
func NewDotPainter() *DotPainter {
	dp := &DotPainter{pixel: ebiten.NewImage(1, 1)}
	dp.pixel.Fill(color.White)
	return dp
}

// Dot draws a size*size square centered on (x, y).
func (dp *DotPainter) Dot(dst *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(dp.pixel, op)
}

// Rect draws an axis-aligned filled rectangle.
func (dp *DotPainter) Rect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(dp.pixel, op)
}
