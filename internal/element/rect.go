package element

// Rect is an axis-aligned bounding box in canvas space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Center returns the center point of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// BoundsOf returns the union bounding box of a set of elements. The second
// return is false when the set is empty.
func BoundsOf(elements []Element) (Rect, bool) {
	if len(elements) == 0 {
		return Rect{}, false
	}

	minX := elements[0].X
	minY := elements[0].Y
	maxX := elements[0].X + elements[0].Width
	maxY := elements[0].Y + elements[0].Height
	for _, e := range elements[1:] {
		minX = min(minX, e.X)
		minY = min(minY, e.Y)
		maxX = max(maxX, e.X+e.Width)
		maxY = max(maxY, e.Y+e.Height)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
