package element

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalVisibleDefaultsTrue(t *testing.T) {
	var el Element
	if err := json.Unmarshal([]byte(`{"id":"el_1","type":"rect","width":100,"height":50}`), &el); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !el.Visible {
		t.Error("visible should default to true when omitted")
	}

	var hidden Element
	if err := json.Unmarshal([]byte(`{"id":"el_2","type":"rect","visible":false}`), &hidden); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if hidden.Visible {
		t.Error("explicit visible=false should survive decoding")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewLine(Base{ID: "el_line", Opacity: 1}, []float64{0, 0, 100, 50}, "#000", 2)
	orig.Gradient = &Gradient{Enabled: true, ColorStops: []string{"#fff", "#000"}, Angle: 90}
	orig.Shadow = &Shadow{Color: "#333", Blur: 4}

	clone := orig.Clone()
	clone.Points[0] = 999
	clone.Gradient.ColorStops[0] = "#f00"
	clone.Shadow.Blur = 99

	if orig.Points[0] != 0 {
		t.Errorf("points shared between clone and original: got %v", orig.Points[0])
	}
	if orig.Gradient.ColorStops[0] != "#fff" {
		t.Errorf("gradient stops shared: got %v", orig.Gradient.ColorStops[0])
	}
	if orig.Shadow.Blur != 4 {
		t.Errorf("shadow shared: got %v", orig.Shadow.Blur)
	}
}

func TestApplyPartialMerge(t *testing.T) {
	el := NewRect(Base{ID: "el_rect", X: 10, Y: 10, Width: 100, Height: 50, Opacity: 1, Name: "Box"}, "#ff0000", "", 0, 0, nil)

	el.Apply(map[string]any{
		"x":    42.0,
		"fill": "#00ff00",
		"id":   "el_hijack",
		"type": "circle",
	})

	if el.X != 42 {
		t.Errorf("x = %v, want 42", el.X)
	}
	if el.Fill != "#00ff00" {
		t.Errorf("fill = %q, want #00ff00", el.Fill)
	}
	if el.Y != 10 || el.Width != 100 {
		t.Error("untouched fields must survive a partial merge")
	}
	if el.ID != "el_rect" || el.Type != TypeRect {
		t.Error("id and type must be immutable through Apply")
	}
}

func TestApplyNumericIntFields(t *testing.T) {
	el := NewPolygon(Base{ID: "el_poly", Width: 80, Height: 80, Opacity: 1}, 5, "#123", "", 0, nil)

	// JSON decoding yields float64 for all numbers.
	el.Apply(map[string]any{"sides": 8.0, "points": []any{1.0, 2.0, 3.0, 4.0}})

	if el.Sides != 8 {
		t.Errorf("sides = %d, want 8", el.Sides)
	}
	if len(el.Points) != 4 || el.Points[2] != 3 {
		t.Errorf("points = %v, want [1 2 3 4]", el.Points)
	}
}

func TestBoundsOfUnion(t *testing.T) {
	elements := []Element{
		NewRect(Base{ID: "a", X: 10, Y: 20, Width: 30, Height: 40, Opacity: 1}, "", "", 0, 0, nil),
		NewRect(Base{ID: "b", X: 100, Y: 5, Width: 50, Height: 10, Opacity: 1}, "", "", 0, 0, nil),
	}

	box, ok := BoundsOf(elements)
	if !ok {
		t.Fatal("expected bounds for non-empty set")
	}
	want := Rect{X: 10, Y: 5, Width: 140, Height: 55}
	if box != want {
		t.Errorf("bounds = %+v, want %+v", box, want)
	}

	if _, ok := BoundsOf(nil); ok {
		t.Error("empty set must report no bounds")
	}
}

func TestBoundsOfZeroAreaElement(t *testing.T) {
	// A bare point still contributes its position to the union.
	elements := []Element{
		NewRect(Base{ID: "a", X: 50, Y: 50, Width: 20, Height: 20, Opacity: 1}, "", "", 0, 0, nil),
		NewLine(Base{ID: "b", X: 0, Y: 0, Opacity: 1}, []float64{0, 0}, "#000", 1),
	}

	box, _ := BoundsOf(elements)
	if box.X != 0 || box.Y != 0 {
		t.Errorf("bounds = %+v, want origin at (0,0)", box)
	}
}

func TestFactoriesSetVariantAndVisible(t *testing.T) {
	cases := []struct {
		el   Element
		want Type
	}{
		{NewRect(Base{}, "", "", 0, 0, nil), TypeRect},
		{NewCircle(Base{}, "", "", 0, nil), TypeCircle},
		{NewTriangle(Base{}, "", "", 0, nil), TypeTriangle},
		{NewStar(Base{}, 5, 20, "", "", 0, nil), TypeStar},
		{NewPolygon(Base{}, 6, "", "", 0, nil), TypePolygon},
		{NewArrow(Base{}, []float64{0, 0, 50, 0}, 10, 10, "", "", 1), TypeArrow},
		{NewLine(Base{}, []float64{0, 0, 50, 0}, "", 1), TypeLine},
		{NewText(Base{}, TextOptions{Text: "hi"}), TypeText},
		{NewImage(Base{}, "https://example.com/a.png"), TypeImage},
	}

	for _, tc := range cases {
		if tc.el.Type != tc.want {
			t.Errorf("factory produced type %q, want %q", tc.el.Type, tc.want)
		}
		if !tc.el.Visible {
			t.Errorf("%s factory must produce visible elements", tc.want)
		}
	}

	if tri := NewTriangle(Base{}, "", "", 0, nil); tri.Sides != 3 {
		t.Errorf("triangle sides = %d, want 3", tri.Sides)
	}
}

func TestRectUnionAndContains(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 20, Height: 20}

	u := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 25, Height: 25}
	if u != want {
		t.Errorf("union = %+v, want %+v", u, want)
	}

	if !u.Contains(25, 25) {
		t.Error("union edge should be inclusive")
	}
	if u.Contains(26, 25) {
		t.Error("point outside union reported as contained")
	}
}
