package render

import (
	"errors"
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/thickline"
	"golang.org/x/image/vector"
)

// RasterOptions configures Rasterize. Zero values select defaults.
type RasterOptions struct {
	Margin      float64 // fraction of the shape size left blank, default 0.1
	Fill        string  // hex fill color, default "#468966"
	Background  string  // hex background color, default "#FFF8E3"
	Supersample int     // supersampling factor for antialiasing, default 4
}

func (o RasterOptions) withDefaults() RasterOptions {
	if o.Margin <= 0 {
		o.Margin = 0.1
	}
	if o.Fill == "" {
		o.Fill = "#468966"
	}
	if o.Background == "" {
		o.Background = "#FFF8E3"
	}
	if o.Supersample <= 0 {
		o.Supersample = 4
	}
	return o
}

// Rasterize draws the polygons of s into a width by height image. The
// shapes are rendered at a higher resolution and downsampled.
func Rasterize(s thickline.Shapes, width, height int, opt RasterOptions) (image.Image, error) {
	if err := checkShapes(s); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("render: image dimensions must be positive")
	}
	opt = opt.withDefaults()
	w, h := width*opt.Supersample, height*opt.Supersample
	t, err := fitViewport(s.Bounds(), w, h, opt.Margin)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := image.NewUniform(fauxgl.HexColor(opt.Background).NRGBA())
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
	fill := image.NewUniform(fauxgl.HexColor(opt.Fill).NRGBA())

	fw, fh := float32(w), float32(h)
	z := vector.NewRasterizer(w, h)
	for _, p := range s.Polygons() {
		z.Reset(w, h)
		for i, v := range p {
			q := t.ApplyPos(v)
			// Rounding can push vertices on the margin slightly outside the canvas.
			x := math32.Max(0, math32.Min(fw, float32(q.X)))
			y := math32.Max(0, math32.Min(fh, float32(q.Y)))
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), fill, image.Point{})
	}
	if opt.Supersample == 1 {
		return dst, nil
	}
	return resize.Resize(uint(width), uint(height), dst, resize.Bilinear), nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}
