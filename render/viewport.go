package render

import (
	"errors"
	"math"

	"github.com/soypat/thickline/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// fitViewport returns the transform mapping sketch space to a w by h
// pixel grid. The box bb is enlarged by margin (a fraction of its size),
// centered and scaled uniformly. Pixel Y grows downward.
func fitViewport(bb r2.Box, w, h int, margin float64) (d2.Transform, error) {
	if w <= 0 || h <= 0 {
		return d2.Transform{}, errors.New("render: viewport dimensions must be positive")
	}
	box := d2.Box(bb)
	size := box.Size()
	box = box.Enlarge(r2.Scale(2*margin, size))
	size = box.Size()
	if size.X <= 0 && size.Y <= 0 {
		return d2.Transform{}, errors.New("render: empty bounding box")
	}
	scale := math.Inf(1)
	if size.X > 0 {
		scale = float64(w) / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, float64(h)/size.Y)
	}
	t := d2.Translate(r2.Vec{X: float64(w) / 2, Y: float64(h) / 2})
	t = t.Mul(d2.ScaleXY(r2.Vec{X: scale, Y: -scale}))
	return t.Mul(d2.Translate(r2.Scale(-1, box.Center()))), nil
}
