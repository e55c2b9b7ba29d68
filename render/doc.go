// Package render materializes thick line shapes outside of the engine:
// DXF drawings for CAD tools, SVG documents, annotated plots and raster
// previews.
//
// Every writer draws the polygons exactly as emitted, closing each loop
// with an edge from the last vertex back to the first.
package render

import (
	"errors"

	"github.com/soypat/thickline"
)

// ErrEmptyShapes is returned when asked to render shapes without a body.
var ErrEmptyShapes = errors.New("render: shapes have no body")

func checkShapes(s thickline.Shapes) error {
	if len(s.Body) < 3 {
		return ErrEmptyShapes
	}
	return nil
}
