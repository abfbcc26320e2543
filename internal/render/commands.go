package render

import (
	"encoding/json"

	"github.com/stationhq/station/backend-go/internal/element"
)

// DrawCommand represents a single drawing operation for a renderer to
// execute on a Canvas2D-like surface. The command buffer plus the canvas
// dimensions are everything an export layer needs to produce PNG, JPEG,
// or SVG output.
type DrawCommand struct {
	Op          string            `json:"op"` // "path", "text", "image"
	ElementID   string            `json:"elementId,omitempty"`
	Transform   []float64         `json:"transform,omitempty"` // [a, b, c, d, e, f] affine matrix
	Path        []PathCommand     `json:"path,omitempty"`
	Fill        string            `json:"fill,omitempty"`
	Stroke      string            `json:"stroke,omitempty"`
	StrokeWidth float64           `json:"strokeWidth,omitempty"`
	Opacity     float64           `json:"opacity,omitempty"`
	Gradient    *element.Gradient `json:"gradient,omitempty"`

	// Text commands
	Text          string          `json:"text,omitempty"`
	FontSize      float64         `json:"fontSize,omitempty"`
	FontFamily    string          `json:"fontFamily,omitempty"`
	FontStyle     string          `json:"fontStyle,omitempty"`
	Align         string          `json:"align,omitempty"`
	LetterSpacing float64         `json:"letterSpacing,omitempty"`
	LineHeight    float64         `json:"lineHeight,omitempty"`
	Decoration    string          `json:"textDecoration,omitempty"`
	Shadow        *element.Shadow `json:"shadow,omitempty"`

	// Image commands
	Src string `json:"src,omitempty"`

	// Layout box for text and image commands (local space).
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// CompileDrawCommands generates a draw command buffer from the element
// set. Commands are in painter's order (back to front). Hidden elements
// are skipped.
func CompileDrawCommands(elements []element.Element) []DrawCommand {
	commands := make([]DrawCommand, 0, len(elements))
	for _, el := range elements {
		if !el.Visible {
			continue
		}
		if cmd, ok := compileElement(el); ok {
			commands = append(commands, cmd)
		}
	}
	return commands
}

// compileElement compiles one element. The switch covers every element
// variant; the closed set has no runtime extension point.
func compileElement(el element.Element) (DrawCommand, bool) {
	base := DrawCommand{
		ElementID: el.ID,
		Transform: ElementTransform(el).ToSlice(),
		Opacity:   el.Opacity,
	}

	switch el.Type {
	case element.TypeRect, element.TypeCircle, element.TypeTriangle,
		element.TypeStar, element.TypePolygon:
		base.Op = "path"
		base.Path = shapePath(el)
		base.Fill = el.Fill
		base.Stroke = el.Stroke
		base.StrokeWidth = el.StrokeWidth
		if el.Gradient != nil && el.Gradient.Enabled {
			base.Gradient = el.Gradient
		}
		return base, true

	case element.TypeLine:
		base.Op = "path"
		base.Path = shapePath(el)
		base.Stroke = el.Stroke
		base.StrokeWidth = el.StrokeWidth
		return base, true

	case element.TypeArrow:
		base.Op = "path"
		base.Path = shapePath(el)
		base.Fill = el.Fill
		base.Stroke = el.Stroke
		base.StrokeWidth = el.StrokeWidth
		return base, true

	case element.TypeText:
		base.Op = "text"
		base.Text = el.Text
		base.FontSize = el.FontSize
		base.FontFamily = el.FontFamily
		base.FontStyle = el.FontStyle
		base.Align = el.Align
		base.LetterSpacing = el.LetterSpacing
		base.LineHeight = el.LineHeight
		base.Decoration = el.Decoration
		base.Shadow = el.Shadow
		base.Fill = el.Fill
		base.Stroke = el.Stroke
		base.StrokeWidth = el.StrokeWidth
		base.Width = el.Width
		base.Height = el.Height
		return base, true

	case element.TypeImage:
		base.Op = "image"
		base.Src = el.Src
		base.Width = el.Width
		base.Height = el.Height
		return base, true

	default:
		return DrawCommand{}, false
	}
}

// ToJSON serializes draw commands.
func ToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
