package canvas

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func alignFixture() *Canvas {
	c := New(Size{Width: 1080, Height: 1080})
	c.AddElement(rectAt("el_a", 0, 0, 100, 40))
	c.AddElement(rectAt("el_b", 50, 100, 20, 80))
	c.AddElement(rectAt("el_c", 200, 30, 60, 10))
	c.SelectMultiple([]string{"el_a", "el_b", "el_c"})
	return c
}

func TestAlignLeft(t *testing.T) {
	c := alignFixture()
	c.AlignElements(AlignLeft)
	for _, el := range c.SelectedElements() {
		if el.X != 0 {
			t.Errorf("%s x = %v, want 0", el.ID, el.X)
		}
	}
}

func TestAlignRight(t *testing.T) {
	c := alignFixture()
	// Union box spans x 0..260.
	c.AlignElements(AlignRight)
	for _, el := range c.SelectedElements() {
		if right := el.X + el.Width; !almostEqual(right, 260) {
			t.Errorf("%s right edge = %v, want 260", el.ID, right)
		}
	}
}

func TestAlignCenter(t *testing.T) {
	c := alignFixture()
	c.AlignElements(AlignCenter)
	for _, el := range c.SelectedElements() {
		if center := el.X + el.Width/2; !almostEqual(center, 130) {
			t.Errorf("%s center = %v, want 130", el.ID, center)
		}
	}
}

func TestAlignTopMiddleBottom(t *testing.T) {
	// Union box spans y 0..180.
	c := alignFixture()
	c.AlignElements(AlignTop)
	for _, el := range c.SelectedElements() {
		if el.Y != 0 {
			t.Errorf("%s y = %v, want 0", el.ID, el.Y)
		}
	}

	c = alignFixture()
	c.AlignElements(AlignMiddle)
	for _, el := range c.SelectedElements() {
		if mid := el.Y + el.Height/2; !almostEqual(mid, 90) {
			t.Errorf("%s middle = %v, want 90", el.ID, mid)
		}
	}

	c = alignFixture()
	c.AlignElements(AlignBottom)
	for _, el := range c.SelectedElements() {
		if bottom := el.Y + el.Height; !almostEqual(bottom, 180) {
			t.Errorf("%s bottom = %v, want 180", el.ID, bottom)
		}
	}
}

func TestAlignIsIdempotent(t *testing.T) {
	c := alignFixture()
	c.AlignElements(AlignLeft)
	want := c.Elements()

	c.AlignElements(AlignLeft)
	got := c.Elements()

	for i := range got {
		if got[i].X != want[i].X || got[i].Y != want[i].Y {
			t.Errorf("%s moved on repeated align: %+v vs %+v", got[i].ID, got[i], want[i])
		}
	}
}

func TestAlignRequiresTwoElements(t *testing.T) {
	c := New(Size{Width: 1080, Height: 1080})
	c.AddElement(rectAt("el_a", 50, 50, 100, 40))
	c.SetSelectedID("el_a")
	before := c.HistoryLen()

	c.AlignElements(AlignLeft)

	if el, _ := c.Element("el_a"); el.X != 50 {
		t.Errorf("single selection align moved the element: x = %v", el.X)
	}
	if got := c.HistoryLen(); got != before {
		t.Error("no-op align must not commit history")
	}
}

func TestAlignSkipsDanglingSelection(t *testing.T) {
	c := New(Size{Width: 1080, Height: 1080})
	c.AddElement(rectAt("el_a", 50, 50, 100, 40))
	c.SelectMultiple([]string{"el_a", "el_gone"})
	before := c.HistoryLen()

	// Only one live element remains after filtering, so nothing happens.
	c.AlignElements(AlignLeft)
	if got := c.HistoryLen(); got != before {
		t.Error("align with one live element must be a no-op")
	}
}

func TestDistributeHorizontalEqualGaps(t *testing.T) {
	c := New(Size{Width: 1080, Height: 1080})
	c.AddElement(rectAt("el_a", 0, 0, 50, 10))
	c.AddElement(rectAt("el_b", 60, 0, 30, 10))
	c.AddElement(rectAt("el_c", 230, 0, 70, 10))
	c.SelectMultiple([]string{"el_a", "el_b", "el_c"})

	c.DistributeElements(DistributeHorizontal)

	// Span 0..300, elements total 150, so two gaps of 75 each.
	a, _ := c.Element("el_a")
	b, _ := c.Element("el_b")
	cc, _ := c.Element("el_c")

	if a.X != 0 {
		t.Errorf("first element moved: x = %v", a.X)
	}
	if !almostEqual(b.X, 125) {
		t.Errorf("middle element x = %v, want 125", b.X)
	}
	if !almostEqual(cc.X, 230) {
		t.Errorf("last element x = %v, want 230", cc.X)
	}

	gap1 := b.X - (a.X + a.Width)
	gap2 := cc.X - (b.X + b.Width)
	if !almostEqual(gap1, gap2) {
		t.Errorf("gaps unequal: %v vs %v", gap1, gap2)
	}
}

func TestDistributeVerticalSortsByPosition(t *testing.T) {
	c := New(Size{Width: 1080, Height: 1080})
	// Insertion order deliberately differs from spatial order.
	c.AddElement(rectAt("el_top", 0, 300, 10, 40))
	c.AddElement(rectAt("el_mid", 0, 0, 10, 20))
	c.AddElement(rectAt("el_bot", 0, 100, 10, 30))
	c.SelectMultiple([]string{"el_top", "el_mid", "el_bot"})

	c.DistributeElements(DistributeVertical)

	// Spatial order: el_mid (y0), el_bot (y100), el_top (y300..340).
	// Span 0..340, sizes total 90, gaps of 125.
	mid, _ := c.Element("el_mid")
	bot, _ := c.Element("el_bot")
	top, _ := c.Element("el_top")

	if mid.Y != 0 {
		t.Errorf("first element moved: y = %v", mid.Y)
	}
	if !almostEqual(bot.Y, 145) {
		t.Errorf("interior element y = %v, want 145", bot.Y)
	}
	if !almostEqual(top.Y, 300) {
		t.Errorf("last element y = %v, want 300", top.Y)
	}
}

func TestDistributeRequiresThreeElements(t *testing.T) {
	c := New(Size{Width: 1080, Height: 1080})
	c.AddElement(rectAt("el_a", 0, 0, 50, 10))
	c.AddElement(rectAt("el_b", 200, 0, 50, 10))
	c.SelectMultiple([]string{"el_a", "el_b"})
	before := c.HistoryLen()

	c.DistributeElements(DistributeHorizontal)

	if el, _ := c.Element("el_b"); el.X != 200 {
		t.Errorf("two-element distribute moved an element: x = %v", el.X)
	}
	if got := c.HistoryLen(); got != before {
		t.Error("no-op distribute must not commit history")
	}
}

func TestDistributeCommitsOnce(t *testing.T) {
	c := alignFixture()
	before := c.HistoryLen()
	c.DistributeElements(DistributeHorizontal)
	if got := c.HistoryLen(); got != before+1 {
		t.Errorf("history length = %d, want %d (single batch commit)", got, before+1)
	}
}
