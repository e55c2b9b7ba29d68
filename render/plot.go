package render

import (
	"fmt"
	"image/color"

	"github.com/soypat/thickline"
	"github.com/soypat/thickline/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	bodyColor    = color.NRGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	featureColor = color.NRGBA{R: 0xff, G: 0xb0, B: 0x3b, A: 0xff}
	guideColor   = color.NRGBA{R: 0xb6, G: 0x49, B: 0x26, A: 0xff}
)

// Plot returns an annotated plot of r: the polygons, the axis between
// the tips and markers for the endpoints, tips and feature bases.
// Both axes share the same scale.
func Plot(r thickline.Result) (*plot.Plot, error) {
	if err := checkShapes(r.Shapes); err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "Thick line"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, poly := range r.Shapes.Polygons() {
		pg, err := plotter.NewPolygon(toXYs(poly...))
		if err != nil {
			return nil, fmt.Errorf("render: polygon %d: %w", i, err)
		}
		pg.Color = featureColor
		if i == 0 {
			pg.Color = bodyColor
		}
		p.Add(pg)
	}

	g := r.Geometry
	axis, err := plotter.NewLine(toXYs(g.TipA, g.TipB))
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Color = guideColor
	axis.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(axis)
	p.Legend.Add("axis", axis)

	markers := []struct {
		name  string
		pts   []r2.Vec
		shape draw.GlyphDrawer
	}{
		{name: "A, B", pts: []r2.Vec{r.Input.A, r.Input.B}, shape: draw.BoxGlyph{}},
		{name: "tips", pts: []r2.Vec{g.TipA, g.TipB}, shape: draw.CrossGlyph{}},
		{name: "bases", pts: []r2.Vec{g.BaseA, g.BaseB}, shape: draw.CircleGlyph{}},
	}
	for _, m := range markers {
		sc, err := plotter.NewScatter(toXYs(m.pts...))
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = m.shape
		sc.GlyphStyle.Color = guideColor
		p.Add(sc)
		p.Legend.Add(m.name, sc)
	}

	// Square data range so the drawing is not distorted.
	box := d2.Box(r.Shapes.Bounds())
	side := d2.Max(box.Size()) * 1.2
	box = d2.NewBox2(box.Center(), d2.Elem(side))
	p.X.Min, p.X.Max = box.Min.X, box.Max.X
	p.Y.Min, p.Y.Max = box.Min.Y, box.Max.Y
	return p, nil
}

// SavePlot saves the plot of r to path. The format is chosen from the
// file extension (png, svg, pdf, ...).
func SavePlot(path string, r thickline.Result, size vg.Length) error {
	p, err := Plot(r)
	if err != nil {
		return err
	}
	return p.Save(size, size, path)
}

func toXYs(pts ...r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}
