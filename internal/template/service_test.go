package template

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "station.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st)
}

func TestSaveAndDecodeTemplate(t *testing.T) {
	svc := newTestService(t)

	defs := []element.Element{
		element.NewRect(element.Base{Width: 100, Height: 50, Opacity: 1, Name: "Box"}, "#f00", "", 0, 0, nil),
	}
	id, err := svc.Save("Banner", "custom", 1200, 400, defs, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("save returned empty ID")
	}

	tpl, err := svc.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tpl.Width != 1200 || tpl.Name != "Banner" {
		t.Errorf("template = %+v", tpl)
	}

	decoded, err := svc.Elements(tpl)
	if err != nil {
		t.Fatalf("decode elements: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "Box" {
		t.Errorf("decoded = %+v", decoded)
	}
	if !decoded[0].Visible {
		t.Error("decoded element lost its visible flag")
	}
}

func TestGetMissingTemplate(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Get("tpl_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteBuiltinRejected(t *testing.T) {
	svc := newTestService(t)

	templates, err := svc.List()
	if err != nil || len(templates) == 0 {
		t.Fatalf("list: %v (%d templates)", err, len(templates))
	}

	err = svc.Delete(templates[0].ID)
	if !errors.Is(err, ErrBuiltin) {
		t.Errorf("err = %v, want ErrBuiltin", err)
	}

	if err := svc.Delete("tpl_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing delete err = %v, want ErrNotFound", err)
	}
}

func TestMarkUsedAffectsOrdering(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.Save("Favorite", "custom", 100, 100, nil, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	for i := 0; i < 5; i++ {
		svc.MarkUsed(id)
	}

	templates, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if templates[0].ID != id {
		t.Errorf("first template = %q, want %q (most used first)", templates[0].ID, id)
	}
}
