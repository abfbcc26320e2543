package canvas

import "testing"

func TestZoomClamped(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})

	if got := c.Zoom(); got != 1.0 {
		t.Errorf("initial zoom = %v, want 1.0", got)
	}

	c.SetZoom(0.01)
	if got := c.Zoom(); got != MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", got, MinZoom)
	}

	c.SetZoom(50)
	if got := c.Zoom(); got != MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", got, MaxZoom)
	}

	c.SetZoom(2.5)
	if got := c.Zoom(); got != 2.5 {
		t.Errorf("zoom = %v, want 2.5", got)
	}
}

func TestApplyPreset(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})

	c.ApplyPreset("instagram-story")
	if size := c.Size(); size.Width != 1080 || size.Height != 1920 {
		t.Errorf("size = %+v, want 1080x1920", size)
	}
	if got := c.Preset(); got != "instagram-story" {
		t.Errorf("preset = %q, want instagram-story", got)
	}

	// Unknown preset IDs no-op.
	c.ApplyPreset("tiktok-vertical")
	if got := c.Preset(); got != "instagram-story" {
		t.Errorf("unknown preset changed state to %q", got)
	}

	// Manual resize reverts to custom.
	c.SetSize(800, 600)
	if got := c.Preset(); got != PresetCustom {
		t.Errorf("preset after manual resize = %q, want %q", got, PresetCustom)
	}
}

func TestPresetCatalog(t *testing.T) {
	catalog := Presets()
	if len(catalog) == 0 {
		t.Fatal("preset catalog is empty")
	}

	p, ok := PresetByID("newsletter-header")
	if !ok {
		t.Fatal("newsletter-header missing from catalog")
	}
	if p.Width != 600 || p.Height != 200 {
		t.Errorf("newsletter-header = %dx%d, want 600x200", p.Width, p.Height)
	}

	// Returned catalog is a copy.
	catalog[0].Width = 9999
	p2, _ := PresetByID(catalog[0].ID)
	if p2.Width == 9999 {
		t.Error("catalog mutation leaked into the shared preset table")
	}
}

func TestGridSettings(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})

	if c.ShowGrid() || c.SnapToGrid() {
		t.Error("grid must start disabled")
	}
	if got := c.GridSize(); got != 20 {
		t.Errorf("default grid size = %v, want 20", got)
	}

	c.SetGridSize(0)
	c.SetGridSize(-5)
	if got := c.GridSize(); got != 20 {
		t.Errorf("non-positive grid size accepted: %v", got)
	}

	c.SetSnapToGrid(true)
	c.SetGridSize(10)
	if got := c.Snap(17); got != 20 {
		t.Errorf("snap(17) = %v, want 20", got)
	}
	if got := c.Snap(14.9); got != 10 {
		t.Errorf("snap(14.9) = %v, want 10", got)
	}

	c.SetSnapToGrid(false)
	if got := c.Snap(17); got != 17 {
		t.Errorf("snap while disabled = %v, want passthrough", got)
	}
}

func TestViewportChangesDoNotCommitHistory(t *testing.T) {
	c := New(Size{Width: 600, Height: 200})
	before := c.HistoryLen()

	c.SetZoom(2)
	c.SetSize(800, 600)
	c.ApplyPreset("twitter-post")
	c.SetShowGrid(true)
	c.SetSnapToGrid(true)
	c.SetGridSize(25)

	if got := c.HistoryLen(); got != before {
		t.Errorf("viewport mutations committed history: %d, want %d", got, before)
	}
}
