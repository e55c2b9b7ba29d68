// Command thickline builds a thick line between two points and writes it
// as DXF, SVG, PNG or an annotated plot. Parameters not given on the
// command line are taken from the settings of the previous successful run.
//
// Usage:
//
//	thickline -a 0,0 -b 10,0 -width 2 -featA Arrow -featAW 4 -featAL 1 -dxf line.dxf
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/thickline"
	"github.com/soypat/thickline/render"
	"github.com/soypat/thickline/settings"
	"github.com/soypat/thickline/sketch"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("thickline: ")
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("thickline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		a, b         vecFlag
		origin       vecFlag
		xaxis        = vecFlag{v: r3.Vec{X: 1}}
		yaxis        = vecFlag{v: r3.Vec{Y: 1}}
		settingsPath = fs.String("settings", "", "settings file (default in user config dir)")
		noSave       = fs.Bool("nosave", false, "do not save settings after a successful run")
		dxfPath      = fs.String("dxf", "", "write DXF drawing to `file`")
		svgPath      = fs.String("svg", "", "write SVG document to `file`")
		pngPath      = fs.String("png", "", "write PNG preview to `file`")
		plotPath     = fs.String("plot", "", "write annotated plot to `file` (png, svg or pdf)")
		imgWidth     = fs.Int("imgw", 800, "SVG and PNG width in pixels")
		imgHeight    = fs.Int("imgh", 400, "SVG and PNG height in pixels")
		verbose      = fs.Bool("v", false, "enable debug logging")
	)
	fs.Var(&a, "a", "point A as `x,y[,z]` in world coordinates (required)")
	fs.Var(&b, "b", "point B as `x,y[,z]` in world coordinates (required)")
	fs.Var(&origin, "origin", "sketch plane origin `x,y,z`")
	fs.Var(&xaxis, "xaxis", "sketch plane x axis `x,y,z`")
	fs.Var(&yaxis, "yaxis", "sketch plane y axis `x,y,z`")

	// Flag values only replace saved settings when given explicitly.
	var flagged settings.Settings
	def := settings.Default()
	fs.Float64Var(&flagged.Width, "width", def.Width, "line width (cm)")
	fs.Float64Var(&flagged.LeadA, "leadA", def.LeadA, "lead beyond A (cm)")
	fs.Float64Var(&flagged.LeadB, "leadB", def.LeadB, "lead beyond B (cm)")
	fs.TextVar(&flagged.FeatureA.Type, "featA", def.FeatureA.Type, "feature at A: None, Arrow or T")
	fs.Float64Var(&flagged.FeatureA.Width, "featAW", def.FeatureA.Width, "feature A width (cm)")
	fs.Float64Var(&flagged.FeatureA.Length, "featAL", def.FeatureA.Length, "feature A length (cm)")
	fs.TextVar(&flagged.FeatureB.Type, "featB", def.FeatureB.Type, "feature at B: None, Arrow or T")
	fs.Float64Var(&flagged.FeatureB.Width, "featBW", def.FeatureB.Width, "feature B width (cm)")
	fs.Float64Var(&flagged.FeatureB.Length, "featBL", def.FeatureB.Length, "feature B length (cm)")
	overrides := map[string]func(s *settings.Settings){
		"width":  func(s *settings.Settings) { s.Width = flagged.Width },
		"leadA":  func(s *settings.Settings) { s.LeadA = flagged.LeadA },
		"leadB":  func(s *settings.Settings) { s.LeadB = flagged.LeadB },
		"featA":  func(s *settings.Settings) { s.FeatureA.Type = flagged.FeatureA.Type },
		"featAW": func(s *settings.Settings) { s.FeatureA.Width = flagged.FeatureA.Width },
		"featAL": func(s *settings.Settings) { s.FeatureA.Length = flagged.FeatureA.Length },
		"featB":  func(s *settings.Settings) { s.FeatureB.Type = flagged.FeatureB.Type },
		"featBW": func(s *settings.Settings) { s.FeatureB.Width = flagged.FeatureB.Width },
		"featBL": func(s *settings.Settings) { s.FeatureB.Length = flagged.FeatureB.Length },
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !a.set || !b.set {
		return errors.New("both -a and -b are required")
	}
	if *verbose {
		thickline.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer thickline.SetLogger(nil)
	}

	path := *settingsPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return err
		}
	}
	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply(&s)
		}
	})

	plane, err := sketch.NewPlane(origin.v, xaxis.v, yaxis.v)
	if err != nil {
		return err
	}
	in := s.Input(plane.ToSketch(a.v), plane.ToSketch(b.v))
	res, err := thickline.Build(in)
	if err != nil {
		return fmt.Errorf("invalid thick line: %s", thickline.ErrorMessage(err))
	}

	if *dxfPath != "" {
		if err := render.WriteDXF(*dxfPath, res.Shapes); err != nil {
			return err
		}
		log.Printf("wrote %s", *dxfPath)
	}
	if *svgPath != "" {
		if err := writeSVG(*svgPath, res, *imgWidth, *imgHeight); err != nil {
			return err
		}
		log.Printf("wrote %s", *svgPath)
	}
	if *pngPath != "" {
		img, err := render.Rasterize(res.Shapes, *imgWidth, *imgHeight, render.RasterOptions{})
		if err != nil {
			return err
		}
		if err := render.SavePNG(*pngPath, img); err != nil {
			return err
		}
		log.Printf("wrote %s", *pngPath)
	}
	if *plotPath != "" {
		if err := render.SavePlot(*plotPath, res, 6*vg.Inch); err != nil {
			return err
		}
		log.Printf("wrote %s", *plotPath)
	}

	if !*noSave {
		if err := settings.Save(path, s); err != nil {
			return err
		}
		log.Printf("settings saved to %s", path)
	}
	return nil
}

func writeSVG(path string, res thickline.Result, w, h int) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = render.WriteSVG(fp, res, render.SVGOptions{Width: w, Height: h, Guides: true})
	if err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// vecFlag is a flag.Value holding a point given as "x,y" or "x,y,z".
type vecFlag struct {
	v   r3.Vec
	set bool
}

func (f *vecFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return fmt.Errorf("want 2 or 3 comma separated numbers, got %q", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		c[i] = v
	}
	f.v = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	f.set = true
	return nil
}
