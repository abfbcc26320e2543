package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stationhq/station/backend-go/internal/element"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "station.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsBuiltinTemplates(t *testing.T) {
	s := openTestStore(t)

	templates, err := s.ListTemplates()
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("expected builtin templates after first open")
	}

	for _, tpl := range templates {
		if !tpl.IsBuiltin {
			t.Errorf("template %q seeded without builtin flag", tpl.Name)
		}
		var defs []element.Element
		if err := json.Unmarshal([]byte(tpl.ElementsJSON), &defs); err != nil {
			t.Errorf("template %q elements do not decode: %v", tpl.Name, err)
		}
		if len(defs) == 0 {
			t.Errorf("template %q has no elements", tpl.Name)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "station.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	first, _ := s1.ListTemplates()
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()
	second, _ := s2.ListTemplates()

	if len(first) != len(second) {
		t.Errorf("reopen duplicated builtins: %d then %d", len(first), len(second))
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	s := openTestStore(t)

	tpl := Template{
		ID:           "tpl_test1",
		Name:         "My Banner",
		Category:     "custom",
		Width:        1200,
		Height:       400,
		ElementsJSON: `[]`,
	}
	if err := s.SaveTemplate(tpl); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetTemplate("tpl_test1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "My Banner" || got.Width != 1200 || got.IsBuiltin {
		t.Errorf("round trip = %+v", got)
	}
}

func TestGetTemplateNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetTemplate("tpl_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTemplateProtectsBuiltins(t *testing.T) {
	s := openTestStore(t)

	templates, _ := s.ListTemplates()
	builtin := templates[0]

	err := s.DeleteTemplate(builtin.ID)
	if !errors.Is(err, ErrBuiltinTemplate) {
		t.Errorf("deleting builtin: err = %v, want ErrBuiltinTemplate", err)
	}

	if _, err := s.GetTemplate(builtin.ID); err != nil {
		t.Error("builtin template removed despite protection")
	}

	// User templates delete fine.
	s.SaveTemplate(Template{ID: "tpl_user", Name: "User", Category: "custom", Width: 100, Height: 100, ElementsJSON: "[]"})
	if err := s.DeleteTemplate("tpl_user"); err != nil {
		t.Errorf("deleting user template: %v", err)
	}
	if _, err := s.GetTemplate("tpl_user"); !errors.Is(err, ErrNotFound) {
		t.Error("user template still present after delete")
	}
}

func TestUsageCountOrdersListing(t *testing.T) {
	s := openTestStore(t)

	s.SaveTemplate(Template{ID: "tpl_cold", Name: "Cold", Category: "custom", Width: 1, Height: 1, ElementsJSON: "[]"})
	s.SaveTemplate(Template{ID: "tpl_hot", Name: "Hot", Category: "custom", Width: 1, Height: 1, ElementsJSON: "[]"})

	for i := 0; i < 3; i++ {
		s.IncrementTemplateUsage("tpl_hot")
	}

	templates, err := s.ListTemplates()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if templates[0].ID != "tpl_hot" {
		t.Errorf("first template = %q, want tpl_hot (most used first)", templates[0].ID)
	}
	if templates[0].UsageCount != 3 {
		t.Errorf("usage count = %d, want 3", templates[0].UsageCount)
	}
}

func TestUserRoundTrip(t *testing.T) {
	s := openTestStore(t)

	u := User{ID: "user_1", Email: "kim@example.com", Password: "hash", DisplayName: "Kim"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byEmail, err := s.GetUserByEmail("kim@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != "user_1" || byEmail.DisplayName != "Kim" {
		t.Errorf("user = %+v", byEmail)
	}

	byID, err := s.GetUserByID("user_1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "kim@example.com" {
		t.Errorf("user = %+v", byID)
	}

	if _, err := s.GetUserByEmail("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user err = %v, want ErrNotFound", err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	s := openTestStore(t)

	s.CreateUser(User{ID: "user_1", Email: "kim@example.com", Password: "h", DisplayName: "Kim"})
	err := s.CreateUser(User{ID: "user_2", Email: "kim@example.com", Password: "h", DisplayName: "Other"})
	if err == nil {
		t.Error("duplicate email accepted")
	}
}
