package canvas

import (
	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

// ApplyTemplate resizes the canvas to the template dimensions and inserts
// every element definition with a freshly generated unique ID. The whole
// application is one coalesced history commit, so a single undo removes
// the entire template. The inserted elements become the new selection.
func (c *Canvas) ApplyTemplate(width, height int, defs []element.Element) {
	c.size = Size{Width: width, Height: height}
	c.preset = PresetCustom

	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		el := def.Clone()
		el.ID = typeid.NewElementID()
		c.elements = append(c.elements, el)
		ids = append(ids, el.ID)
	}
	c.selection = ids

	c.commit()
	c.notify()
}

// ExportTemplate produces the serializable save-as-template shape: the
// canvas dimensions plus deep copies of the live elements with IDs
// stripped (fresh IDs are assigned on application).
func (c *Canvas) ExportTemplate() (width, height int, defs []element.Element) {
	defs = element.CloneSlice(c.elements)
	for i := range defs {
		defs[i].ID = ""
	}
	return c.size.Width, c.size.Height, defs
}
