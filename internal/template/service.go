package template

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/store"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

var (
	ErrNotFound = errors.New("template not found")
	ErrBuiltin  = errors.New("builtin templates cannot be deleted")
)

// Service manages the template catalog: builtin designs seeded at first
// run plus user designs saved from the canvas.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns all templates, most used first.
func (s *Service) List() ([]store.Template, error) {
	return s.store.ListTemplates()
}

// Get fetches one template.
func (s *Service) Get(id string) (*store.Template, error) {
	t, err := s.store.GetTemplate(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Save stores a new user template from the canvas's serializable shape
// (element definitions with IDs stripped plus dimensions).
func (s *Service) Save(name, category string, width, height int, defs []element.Element, thumbnail string) (string, error) {
	elementsJSON, err := json.Marshal(defs)
	if err != nil {
		return "", fmt.Errorf("marshal elements: %w", err)
	}

	t := store.Template{
		ID:           typeid.NewTemplateID(),
		Name:         name,
		Category:     category,
		Width:        width,
		Height:       height,
		Thumbnail:    thumbnail,
		ElementsJSON: string(elementsJSON),
	}
	if err := s.store.SaveTemplate(t); err != nil {
		return "", err
	}

	s.store.LogActivity("template.created", "template", t.ID, name)
	return t.ID, nil
}

// Delete removes a user template. Builtins are protected.
func (s *Service) Delete(id string) error {
	err := s.store.DeleteTemplate(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrBuiltinTemplate):
		return ErrBuiltin
	case err != nil:
		return err
	}

	s.store.LogActivity("template.deleted", "template", id, "")
	return nil
}

// Elements decodes a template's element definitions. Definitions omitting
// the visible flag decode as visible.
func (s *Service) Elements(t *store.Template) ([]element.Element, error) {
	var defs []element.Element
	if err := json.Unmarshal([]byte(t.ElementsJSON), &defs); err != nil {
		return nil, fmt.Errorf("decode template elements: %w", err)
	}
	return defs, nil
}

// MarkUsed bumps the template's usage counter. Best effort.
func (s *Service) MarkUsed(id string) {
	s.store.IncrementTemplateUsage(id)
}
