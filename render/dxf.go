package render

import (
	"fmt"

	"github.com/soypat/thickline"
	"github.com/yofu/dxf"
)

// DXFLayer is the layer thick line polygons are drawn on.
const DXFLayer = "ThickLine"

// WriteDXF writes the polygons of s to a DXF file at path. Each polygon
// is drawn as a closed loop of LINE entities at z=0.
func WriteDXF(path string, s thickline.Shapes) error {
	if err := checkShapes(s); err != nil {
		return err
	}
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(DXFLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("render: adding dxf layer: %w", err)
	}
	for _, p := range s.Polygons() {
		for i := range p {
			a, b := p[i], p[(i+1)%len(p)]
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return fmt.Errorf("render: adding dxf line: %w", err)
			}
		}
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("render: saving dxf: %w", err)
	}
	return nil
}
