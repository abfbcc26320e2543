package canvas

import (
	"strings"
	"testing"

	"github.com/stationhq/station/backend-go/internal/element"
)

func TestApplyTemplateSingleCommit(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})
	before := c.HistoryLen()

	defs := []element.Element{
		element.NewRect(element.Base{Width: 1080, Height: 1080, Opacity: 1, Name: "Background"}, "#ffffff", "", 0, 0, nil),
		element.NewText(element.Base{X: 100, Y: 100, Width: 880, Height: 200, Opacity: 1, Name: "Title"}, element.TextOptions{Text: "Hello", FontSize: 64, Fill: "#000"}),
	}
	c.ApplyTemplate(1080, 1080, defs)

	if got := c.Len(); got != 2 {
		t.Fatalf("len = %d, want 2", got)
	}
	if size := c.Size(); size.Width != 1080 {
		t.Errorf("size = %+v, want 1080 wide", size)
	}
	if got := c.HistoryLen(); got != before+1 {
		t.Errorf("history length = %d, want %d (whole template is one commit)", got, before+1)
	}

	// A single undo removes the entire template.
	c.Undo()
	if got := c.Len(); got != 0 {
		t.Errorf("len after undo = %d, want 0", got)
	}
}

func TestApplyTemplateAssignsFreshIDs(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})
	defs := []element.Element{
		element.NewRect(element.Base{ID: "tpl-def-1", Width: 10, Height: 10, Opacity: 1}, "#fff", "", 0, 0, nil),
		element.NewRect(element.Base{ID: "tpl-def-1", Width: 20, Height: 20, Opacity: 1}, "#000", "", 0, 0, nil),
	}
	c.ApplyTemplate(600, 200, defs)

	seen := make(map[string]bool)
	for _, el := range c.Elements() {
		if el.ID == "tpl-def-1" {
			t.Errorf("definition ID leaked into the live set")
		}
		if seen[el.ID] {
			t.Errorf("duplicate ID %q", el.ID)
		}
		seen[el.ID] = true
	}

	if got := c.SelectedIDs(); len(got) != 2 {
		t.Errorf("selection = %v, want both inserted elements", got)
	}
}

func TestExportTemplateStripsIDs(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})
	c.AddElement(rectAt("el_a", 5, 5, 50, 50))

	width, height, defs := c.ExportTemplate()
	if width != 600 || height != 200 {
		t.Errorf("exported size = %dx%d, want 600x200", width, height)
	}
	if len(defs) != 1 {
		t.Fatalf("defs = %d, want 1", len(defs))
	}
	if defs[0].ID != "" {
		t.Errorf("exported def ID = %q, want empty", defs[0].ID)
	}

	// Exported defs are detached copies.
	defs[0].X = 999
	if el, _ := c.Element("el_a"); el.X != 5 {
		t.Error("export must not alias live elements")
	}
}

func TestDescribeSummarizesCanvas(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})
	c.AddElement(element.NewText(element.Base{ID: "el_t", Width: 200, Height: 40, Opacity: 1, Name: "Heading"}, element.TextOptions{Text: "Summer Sale", FontSize: 32}))

	desc := c.Describe()
	if !strings.Contains(desc, "600") {
		t.Errorf("summary missing canvas width: %q", desc)
	}
	if !strings.Contains(desc, "Summer Sale") {
		t.Errorf("summary missing text content: %q", desc)
	}
}
