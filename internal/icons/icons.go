package icons

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// BaseSize is the edge length of the design grid all glyphs are drawn on.
const BaseSize = 24

// Foreground is the glyph colour. The background is always transparent.
var Foreground = color.NRGBA{R: 230, G: 230, B: 230, A: 255}

// Spec names a pictogram and the procedure that draws it on the design grid.
type Spec struct {
	Name string
	Draw func(dc *gg.Context)
}

// Filename returns the PNG filename produced for the spec.
func (s Spec) Filename() string {
	return s.Name + ".png"
}

var specs = []Spec{
	{Name: "unknown", Draw: drawUnknown},
	{Name: "rest", Draw: drawRest},
	{Name: "work", Draw: drawWork},
	{Name: "drive", Draw: drawDrive},
}

// Specs returns the pictogram catalog in generation order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Filenames returns the files Generate guarantees to write.
func Filenames() []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Filename()
	}
	return names
}

// Render draws spec onto a transparent size x size canvas.
func Render(spec Spec, size int) (image.Image, error) {
	if size < BaseSize {
		return nil, fmt.Errorf("icon size %d is below minimum %d", size, BaseSize)
	}
	if spec.Draw == nil {
		return nil, fmt.Errorf("icon %q has no drawing procedure", spec.Name)
	}

	dc := gg.NewContext(size, size)
	scale := float64(size) / BaseSize
	dc.Scale(scale, scale)
	dc.SetColor(Foreground)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	spec.Draw(dc)
	return dc.Image(), nil
}

// question mark inside a rounded frame
func drawUnknown(dc *gg.Context) {
	const pad = 3
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(pad, pad, BaseSize-2*pad, BaseSize-2*pad, 3)
	dc.Stroke()

	dc.MoveTo(9, 8)
	dc.LineTo(12, 6)
	dc.LineTo(15, 8)
	dc.LineTo(15, 11)
	dc.LineTo(12, 12)
	dc.LineTo(12, 14)
	dc.Stroke()

	dc.DrawCircle(12, 17, 1)
	dc.Fill()
}

// bed: base, headboard and pillow
func drawRest(dc *gg.Context) {
	dc.SetLineWidth(2)
	dc.DrawRectangle(4, 13, 16, 5)
	dc.Stroke()
	dc.DrawRectangle(4, 9, 4, 9)
	dc.Stroke()

	dc.DrawRectangle(9, 11, 4, 2)
	dc.Fill()
}

// crossed hammers
func drawWork(dc *gg.Context) {
	dc.SetLineWidth(3)
	dc.DrawLine(6, 18, 18, 6)
	dc.Stroke()
	dc.DrawLine(6, 6, 18, 18)
	dc.Stroke()

	dc.DrawRectangle(5, 17, 3, 3)
	dc.Fill()
	dc.DrawRectangle(17, 5, 3, 3)
	dc.Fill()
}

// steering wheel: rim, hub and three spokes
func drawDrive(dc *gg.Context) {
	dc.SetLineWidth(2)
	dc.DrawCircle(12, 12, 8)
	dc.Stroke()
	dc.DrawCircle(12, 12, 2)
	dc.Stroke()

	dc.DrawLine(12, 12, 12, 6)
	dc.DrawLine(12, 12, 6, 14)
	dc.DrawLine(12, 12, 18, 14)
	dc.Stroke()
}
