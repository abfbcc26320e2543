package canvas

import (
	"fmt"
	"strings"

	"github.com/stationhq/station/backend-go/internal/element"
)

// Describe renders a plain-text summary of the canvas for the AI
// assistant: dimensions, preset, every element with its geometry, and the
// current selection. The assistant reads this and mutates the canvas only
// through the same operations as any other caller.
func (c *Canvas) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Canvas %dx%dpx", c.size.Width, c.size.Height)
	if c.preset != PresetCustom {
		fmt.Fprintf(&b, " (%s)", c.preset)
	}
	fmt.Fprintf(&b, ", %d elements\n", len(c.elements))

	for _, el := range c.elements {
		fmt.Fprintf(&b, "- %s %q id=%s at (%.0f,%.0f) size %.0fx%.0f",
			el.Type, el.Name, el.ID, el.X, el.Y, el.Width, el.Height)
		if desc := variantSummary(el); desc != "" {
			b.WriteString(" ")
			b.WriteString(desc)
		}
		if !el.Visible {
			b.WriteString(" [hidden]")
		}
		if el.Locked {
			b.WriteString(" [locked]")
		}
		b.WriteString("\n")
	}

	if ids := c.selectedIndices(); len(ids) > 0 {
		names := make([]string, len(ids))
		for i, idx := range ids {
			names[i] = c.elements[idx].ID
		}
		fmt.Fprintf(&b, "selected: %s\n", strings.Join(names, ", "))
	} else {
		b.WriteString("selected: none\n")
	}

	return b.String()
}

func variantSummary(el element.Element) string {
	switch el.Type {
	case element.TypeRect, element.TypeCircle:
		return fmt.Sprintf("fill=%s", el.Fill)
	case element.TypeTriangle, element.TypePolygon:
		return fmt.Sprintf("sides=%d fill=%s", el.Sides, el.Fill)
	case element.TypeStar:
		return fmt.Sprintf("points=%d fill=%s", el.NumPoints, el.Fill)
	case element.TypeLine:
		return fmt.Sprintf("stroke=%s", el.Stroke)
	case element.TypeArrow:
		return fmt.Sprintf("stroke=%s pointer=%.0fx%.0f", el.Stroke, el.PointerLength, el.PointerWidth)
	case element.TypeText:
		return fmt.Sprintf("text=%q font=%s %.0fpx", el.Text, el.FontFamily, el.FontSize)
	case element.TypeImage:
		return fmt.Sprintf("src=%s", truncate(el.Src, 60))
	default:
		return ""
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
