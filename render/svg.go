package render

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/thickline"
	"gonum.org/v1/gonum/spatial/r2"
)

// SVGOptions configures WriteSVG. Zero values select defaults.
type SVGOptions struct {
	Width, Height int     // canvas size in pixels, default 800x400
	Margin        float64 // fraction of the shape size left blank, default 0.1
	Fill          string  // polygon fill color, default "#468966"
	Stroke        string  // polygon outline color, default "#1b3a2b"
	// Guides draws the line axis between the tips and marks A and B.
	Guides bool
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.Margin <= 0 {
		o.Margin = 0.1
	}
	if o.Fill == "" {
		o.Fill = "#468966"
	}
	if o.Stroke == "" {
		o.Stroke = "#1b3a2b"
	}
	return o
}

// WriteSVG writes an SVG document of the shapes in r to w.
func WriteSVG(w io.Writer, r thickline.Result, opt SVGOptions) error {
	if err := checkShapes(r.Shapes); err != nil {
		return err
	}
	opt = opt.withDefaults()
	t, err := fitViewport(r.Shapes.Bounds(), opt.Width, opt.Height, opt.Margin)
	if err != nil {
		return err
	}
	pixel := func(v r2.Vec) (int, int) {
		p := t.ApplyPos(v)
		return int(math.Round(p.X)), int(math.Round(p.Y))
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opt.Width, opt.Height)
	canvas.Gid("thickline")
	style := "fill:" + opt.Fill + ";stroke:" + opt.Stroke + ";stroke-width:1"
	for _, p := range r.Shapes.Polygons() {
		xs := make([]int, len(p))
		ys := make([]int, len(p))
		for i, v := range p {
			xs[i], ys[i] = pixel(v)
		}
		canvas.Polygon(xs, ys, style)
	}
	canvas.Gend()
	if opt.Guides {
		g := r.Geometry
		x1, y1 := pixel(g.TipA)
		x2, y2 := pixel(g.TipB)
		canvas.Line(x1, y1, x2, y2, "stroke:#b64926;stroke-dasharray:6,3")
		ax, ay := pixel(r.Input.A)
		bx, by := pixel(r.Input.B)
		canvas.Circle(ax, ay, 3, "fill:#b64926")
		canvas.Circle(bx, by, 3, "fill:#b64926")
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first error returned by w and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
