package element

import "encoding/json"

// Type discriminates the closed set of canvas element variants.
// The set is fixed: adding a kind is a schema change, not a runtime extension.
type Type string

const (
	TypeRect     Type = "rect"
	TypeCircle   Type = "circle"
	TypeTriangle Type = "triangle"
	TypeStar     Type = "star"
	TypePolygon  Type = "polygon"
	TypeArrow    Type = "arrow"
	TypeLine     Type = "line"
	TypeText     Type = "text"
	TypeImage    Type = "image"
)

// Types lists every element variant. Consumers switching on Type should
// handle all of these.
var Types = []Type{
	TypeRect, TypeCircle, TypeTriangle, TypeStar, TypePolygon,
	TypeArrow, TypeLine, TypeText, TypeImage,
}

// Gradient is an optional linear fill gradient for shape variants.
type Gradient struct {
	Enabled    bool     `json:"enabled"`
	ColorStops []string `json:"colorStops"`
	Angle      float64  `json:"angle"`
}

// Shadow is an optional drop shadow for text elements.
type Shadow struct {
	Color   string  `json:"color"`
	Blur    float64 `json:"blur"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// Element is one drawable canvas primitive. The variant-specific field
// groups are only meaningful for the matching Type; everything else is
// left at its zero value.
type Element struct {
	ID       string  `json:"id"`
	Type     Type    `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	Name     string  `json:"name"`
	Locked   bool    `json:"locked,omitempty"`
	Visible  bool    `json:"visible"`
	GroupID  string  `json:"groupId,omitempty"`

	// Shape variants (rect, circle, triangle, star, polygon)
	Fill         string    `json:"fill,omitempty"`
	Stroke       string    `json:"stroke,omitempty"`
	StrokeWidth  float64   `json:"strokeWidth,omitempty"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
	Gradient     *Gradient `json:"gradient,omitempty"`
	Sides        int       `json:"sides,omitempty"`
	NumPoints    int       `json:"numPoints,omitempty"`
	InnerRadius  float64   `json:"innerRadius,omitempty"`

	// Line and arrow
	Points        []float64 `json:"points,omitempty"`
	PointerLength float64   `json:"pointerLength,omitempty"`
	PointerWidth  float64   `json:"pointerWidth,omitempty"`

	// Text
	Text          string  `json:"text,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontStyle     string  `json:"fontStyle,omitempty"`
	Align         string  `json:"align,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"`
	Decoration    string  `json:"textDecoration,omitempty"`
	Shadow        *Shadow `json:"shadow,omitempty"`

	// Image
	Src string `json:"src,omitempty"`
}

// UnmarshalJSON decodes an element with Visible defaulting to true when the
// field is absent (template definitions commonly omit it).
func (e *Element) UnmarshalJSON(data []byte) error {
	type alias Element
	a := alias{Visible: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = Element(a)
	return nil
}

// Bounds returns the element's axis-aligned bounding box.
func (e Element) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Clone returns a deep copy of the element.
func (e Element) Clone() Element {
	c := e
	if e.Points != nil {
		c.Points = append([]float64(nil), e.Points...)
	}
	if e.Gradient != nil {
		g := *e.Gradient
		g.ColorStops = append([]string(nil), e.Gradient.ColorStops...)
		c.Gradient = &g
	}
	if e.Shadow != nil {
		s := *e.Shadow
		c.Shadow = &s
	}
	return c
}

// CloneSlice deep-copies a slice of elements.
func CloneSlice(elements []Element) []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = e.Clone()
	}
	return out
}
