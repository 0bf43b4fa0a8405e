// Package icons renders the tachograph activity pictograms used by the
// desktop viewer's event list.
//
// Each Spec draws its glyph on a BaseSize x BaseSize design grid; Render
// scales that grid to the requested canvas size so strokes never fall below
// two pixels. Output is deterministic: the same size always yields the same
// PNG bytes.
package icons
