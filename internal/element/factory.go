package element

// Base carries the geometric and visual attributes shared by every element.
// There are no partial elements: callers supply every field (tool defaults
// live in the caller, not here).
type Base struct {
	ID       string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	Opacity  float64
	Name     string
}

func newElement(t Type, b Base) Element {
	return Element{
		ID:       b.ID,
		Type:     t,
		X:        b.X,
		Y:        b.Y,
		Width:    b.Width,
		Height:   b.Height,
		Rotation: b.Rotation,
		Opacity:  b.Opacity,
		Name:     b.Name,
		Visible:  true,
	}
}

// NewRect builds a rectangle element.
func NewRect(b Base, fill, stroke string, strokeWidth, cornerRadius float64, gradient *Gradient) Element {
	e := newElement(TypeRect, b)
	e.Fill = fill
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	e.CornerRadius = cornerRadius
	e.Gradient = gradient
	return e
}

// NewCircle builds an ellipse fitted to the element's width and height.
func NewCircle(b Base, fill, stroke string, strokeWidth float64, gradient *Gradient) Element {
	e := newElement(TypeCircle, b)
	e.Fill = fill
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	e.Gradient = gradient
	return e
}

// NewTriangle builds a three-sided regular polygon.
func NewTriangle(b Base, fill, stroke string, strokeWidth float64, gradient *Gradient) Element {
	e := newElement(TypeTriangle, b)
	e.Sides = 3
	e.Fill = fill
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	e.Gradient = gradient
	return e
}

// NewPolygon builds a regular polygon with the given number of sides.
func NewPolygon(b Base, sides int, fill, stroke string, strokeWidth float64, gradient *Gradient) Element {
	e := newElement(TypePolygon, b)
	e.Sides = sides
	e.Fill = fill
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	e.Gradient = gradient
	return e
}

// NewStar builds a star with numPoints outer points and the given inner
// radius (in canvas pixels).
func NewStar(b Base, numPoints int, innerRadius float64, fill, stroke string, strokeWidth float64, gradient *Gradient) Element {
	e := newElement(TypeStar, b)
	e.NumPoints = numPoints
	e.InnerRadius = innerRadius
	e.Fill = fill
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	e.Gradient = gradient
	return e
}

// NewLine builds a polyline. Points are a flat coordinate array
// [x0, y0, x1, y1, ...] relative to the element position.
func NewLine(b Base, points []float64, stroke string, strokeWidth float64) Element {
	e := newElement(TypeLine, b)
	e.Points = points
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	return e
}

// NewArrow builds a polyline ending in an arrow head.
func NewArrow(b Base, points []float64, pointerLength, pointerWidth float64, fill, stroke string, strokeWidth float64) Element {
	e := newElement(TypeArrow, b)
	e.Points = points
	e.PointerLength = pointerLength
	e.PointerWidth = pointerWidth
	e.Fill = fill
	e.Stroke = stroke
	e.StrokeWidth = strokeWidth
	return e
}

// TextOptions collects the typographic attributes of a text element.
type TextOptions struct {
	Text          string
	FontSize      float64
	FontFamily    string
	Fill          string
	FontStyle     string
	Align         string
	LetterSpacing float64
	LineHeight    float64
	Decoration    string
	Shadow        *Shadow
	Stroke        string
	StrokeWidth   float64
}

// NewText builds a text element.
func NewText(b Base, opts TextOptions) Element {
	e := newElement(TypeText, b)
	e.Text = opts.Text
	e.FontSize = opts.FontSize
	e.FontFamily = opts.FontFamily
	e.Fill = opts.Fill
	e.FontStyle = opts.FontStyle
	e.Align = opts.Align
	e.LetterSpacing = opts.LetterSpacing
	e.LineHeight = opts.LineHeight
	e.Decoration = opts.Decoration
	e.Shadow = opts.Shadow
	e.Stroke = opts.Stroke
	e.StrokeWidth = opts.StrokeWidth
	return e
}

// NewImage builds an image element. Src is a URL or data URI.
func NewImage(b Base, src string) Element {
	e := newElement(TypeImage, b)
	e.Src = src
	return e
}
