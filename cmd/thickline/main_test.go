package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/thickline"
	"github.com/soypat/thickline/settings"
)

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cfg", "settings.ini")
	out := func(name string) string { return filepath.Join(dir, name) }
	var stderr bytes.Buffer
	err := run([]string{
		"-settings", cfg,
		"-a", "0,0", "-b", "10,0",
		"-width", "2",
		"-featA", "Arrow", "-featAW", "4", "-featAL", "1",
		"-dxf", out("l.dxf"), "-svg", out("l.svg"), "-png", out("l.png"),
		"-imgw", "100", "-imgh", "50",
	}, &stderr)
	if err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	for _, name := range []string{"l.dxf", "l.svg", "l.png"} {
		if info, err := os.Stat(out(name)); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	s, err := settings.Load(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := settings.Default()
	want.Width = 2
	want.FeatureA = settings.Feature{Type: thickline.FeatureArrow, Width: 4, Length: 1}
	if s != want {
		t.Errorf("saved %+v, want %+v", s, want)
	}

	// The next run starts from the saved settings.
	err = run([]string{"-settings", cfg, "-a", "0,0", "-b", "3,4", "-leadB", "0.5", "-nosave"}, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	s, _ = settings.Load(cfg)
	if s.LeadB != 0 {
		t.Error("-nosave run modified settings")
	}
}

func TestRunInvalid(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.ini")
	var stderr bytes.Buffer
	err := run([]string{
		"-settings", cfg, "-a", "0,0", "-b", "10,0", "-width", "2",
		"-featA", "Arrow", "-featAW", "1", "-featAL", "1",
	}, &stderr)
	if err == nil || !strings.Contains(err.Error(), "Feature A width must be >= line width.") {
		t.Errorf("got %v", err)
	}
	if _, statErr := os.Stat(cfg); !os.IsNotExist(statErr) {
		t.Error("settings saved after a failed run")
	}

	err = run([]string{"-settings", cfg, "-a", "1,1,5", "-b", "1,1,-2"}, &stderr)
	if err == nil || !strings.Contains(err.Error(), "coincident") {
		t.Errorf("projected coincident points: got %v", err)
	}
	if err := run([]string{"-settings", cfg, "-a", "1"}, &stderr); err == nil {
		t.Error("malformed point accepted")
	}
	if err := run([]string{"-settings", cfg, "-a", "0,0"}, &stderr); err == nil {
		t.Error("missing -b accepted")
	}
	if err := run([]string{"-settings", cfg, "-a", "0,0", "-b", "1,0", "-featB", "Circle"}, &stderr); err == nil {
		t.Error("unknown feature accepted")
	}
}

func TestRunVerbose(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.ini")
	var stderr bytes.Buffer
	if err := run([]string{"-v", "-nosave", "-settings", cfg, "-a", "0,0", "-b", "0,5"}, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "thickline: built") {
		t.Errorf("no debug output in %q", stderr.String())
	}
}
