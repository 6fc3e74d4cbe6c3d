package drawing

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	dxfdrawing "github.com/yofu/dxf/drawing"
)

// DocumentWriter is the drawing backend the assembler emits into.
type DocumentWriter interface {
	CreateLayer(name string, color int, lineweight int)
	AddCircle(center orb.Point, radius float64, layer string)
	AddPolyline(points []orb.Point, closed bool, layer string)
	Save(path string) error
}

// DXFWriter writes entities into an AutoCAD DXF document.
type DXFWriter struct {
	doc *dxfdrawing.Drawing
}

// NewDXFWriter creates an empty DXF document.
func NewDXFWriter() *DXFWriter {
	return &DXFWriter{doc: dxf.NewDrawing()}
}

// CreateLayer adds a styled layer to the document. Callers are expected to
// create each layer name once.
func (w *DXFWriter) CreateLayer(name string, color int, lineweight int) {
	layer, err := w.doc.AddLayer(name, dxfcolor.ColorNumber(color), dxf.DefaultLineType, false)
	if err != nil || layer == nil {
		return
	}
	layer.SetLineWidth(lineweight)
}

// AddCircle draws a circle marker on the given layer.
func (w *DXFWriter) AddCircle(center orb.Point, radius float64, layer string) {
	w.doc.ChangeLayer(layer)
	w.doc.Circle(center.X(), center.Y(), 0.0, radius)
}

// AddPolyline draws an open or closed lightweight polyline on the given layer.
func (w *DXFWriter) AddPolyline(points []orb.Point, closed bool, layer string) {
	w.doc.ChangeLayer(layer)
	vertices := make([][]float64, len(points))
	for i, p := range points {
		vertices[i] = []float64{p.X(), p.Y()}
	}
	w.doc.LwPolyline(closed, vertices...)
}

// Save writes the document to disk.
func (w *DXFWriter) Save(path string) error {
	if err := w.doc.SaveAs(path); err != nil {
		return errors.Wrap(err, "save dxf")
	}
	return nil
}
