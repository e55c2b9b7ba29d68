package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/thickline"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
)

func arrowLine(t *testing.T) thickline.Result {
	t.Helper()
	res, err := thickline.Build(thickline.Input{
		A:        r2.Vec{X: 0, Y: 0},
		B:        r2.Vec{X: 10, Y: 0},
		Width:    2,
		FeatureA: thickline.FeatureSpec{Kind: thickline.FeatureArrow, Width: 4, Length: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func plainLine(t *testing.T) thickline.Result {
	t.Helper()
	res, err := thickline.Build(thickline.Input{
		A:     r2.Vec{X: 0, Y: 0},
		B:     r2.Vec{X: 10, Y: 0},
		Width: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestEmptyShapes(t *testing.T) {
	if err := WriteDXF(filepath.Join(t.TempDir(), "x.dxf"), thickline.Shapes{}); !errors.Is(err, ErrEmptyShapes) {
		t.Errorf("dxf: got %v", err)
	}
	if err := WriteSVG(&bytes.Buffer{}, thickline.Result{}, SVGOptions{}); !errors.Is(err, ErrEmptyShapes) {
		t.Errorf("svg: got %v", err)
	}
	if _, err := Rasterize(thickline.Shapes{}, 10, 10, RasterOptions{}); !errors.Is(err, ErrEmptyShapes) {
		t.Errorf("png: got %v", err)
	}
	if _, err := Plot(thickline.Result{}); !errors.Is(err, ErrEmptyShapes) {
		t.Errorf("plot: got %v", err)
	}
}

func TestWriteDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrow.dxf")
	if err := WriteDXF(path, arrowLine(t).Shapes); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var lines int
	for _, l := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(l) == "LINE" {
			lines++
		}
	}
	// Four body edges and three arrow edges.
	if lines != 7 {
		t.Errorf("got %d LINE entities, want 7", lines)
	}
	if !strings.Contains(string(b), DXFLayer) {
		t.Errorf("layer %s missing", DXFLayer)
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, arrowLine(t), SVGOptions{Guides: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<polygon"); n != 2 {
		t.Errorf("got %d polygons, want 2", n)
	}
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("got %d endpoint markers, want 2", n)
	}
	if !strings.Contains(out, `width="800"`) || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("unexpected document:\n%s", out)
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(b []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriteSVGError(t *testing.T) {
	fw := &failWriter{}
	err := WriteSVG(fw, plainLine(t), SVGOptions{})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("got %v", err)
	}
	if fw.n != 1 {
		t.Errorf("writer called %d times after failing", fw.n)
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestRasterize(t *testing.T) {
	img, err := Rasterize(plainLine(t).Shapes, 200, 100, RasterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds %v", b)
	}
	center := color.NRGBAModel.Convert(img.At(100, 50)).(color.NRGBA)
	if !near(center.R, 0x46) || !near(center.G, 0x89) || !near(center.B, 0x66) {
		t.Errorf("center pixel %v, want fill color", center)
	}
	corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if !near(corner.R, 0xff) || !near(corner.G, 0xf8) || !near(corner.B, 0xe3) {
		t.Errorf("corner pixel %v, want background color", corner)
	}

	path := filepath.Join(t.TempDir(), "line.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	cfg, err := png.DecodeConfig(fp)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("saved %dx%d image", cfg.Width, cfg.Height)
	}
}

func TestRasterizeNoSupersample(t *testing.T) {
	img, err := Rasterize(arrowLine(t).Shapes, 64, 32, RasterOptions{Supersample: 1, Fill: "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("bounds %v", b)
	}
	if _, err := Rasterize(arrowLine(t).Shapes, 0, 32, RasterOptions{}); err == nil {
		t.Error("zero width accepted")
	}
}

func TestViewportFit(t *testing.T) {
	bb := r2.Box{Min: r2.Vec{X: 0, Y: -1}, Max: r2.Vec{X: 10, Y: 1}}
	tf, err := fitViewport(bb, 120, 120, 0)
	if err != nil {
		t.Fatal(err)
	}
	// 10 units wide maps onto 120 pixels, centered with Y flipped.
	lo := tf.ApplyPos(r2.Vec{X: 0, Y: 1})
	hi := tf.ApplyPos(r2.Vec{X: 10, Y: -1})
	if lo != (r2.Vec{X: 0, Y: 48}) || hi != (r2.Vec{X: 120, Y: 72}) {
		t.Errorf("got %v %v", lo, hi)
	}
	if _, err := fitViewport(r2.Box{}, 10, 10, 0.1); err == nil {
		t.Error("empty box accepted")
	}
}

func TestPlot(t *testing.T) {
	res := arrowLine(t)
	p, err := Plot(res)
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Max-p.X.Min != p.Y.Max-p.Y.Min {
		t.Errorf("axes not square: x [%g,%g] y [%g,%g]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
	path := filepath.Join(t.TempDir(), "plot.png")
	if err := SavePlot(path, res, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty plot file")
	}
}
