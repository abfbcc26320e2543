package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrBuiltinTemplate is returned when deleting a builtin template.
var ErrBuiltinTemplate = errors.New("builtin templates cannot be deleted")

// Template is a saved canvas design: dimensions plus the serialized
// element definitions (IDs stripped; fresh IDs are assigned on apply).
type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Thumbnail    string `json:"thumbnail"`
	ElementsJSON string `json:"elementsJson"`
	UsageCount   int    `json:"usageCount"`
	IsBuiltin    bool   `json:"isBuiltin"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// SaveTemplate inserts a user template.
func (s *Store) SaveTemplate(t Template) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.conn.Exec(
		`INSERT INTO user_templates (id, name, category, width, height, thumbnail, elements_json, usage_count, is_builtin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		t.ID, t.Name, t.Category, t.Width, t.Height, t.Thumbnail, t.ElementsJSON, boolToInt(t.IsBuiltin), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetTemplate fetches one template by ID. Returns ErrNotFound when absent.
func (s *Store) GetTemplate(id string) (*Template, error) {
	row := s.conn.QueryRow(
		`SELECT id, name, category, width, height, thumbnail, elements_json, usage_count, is_builtin, created_at, updated_at
		 FROM user_templates WHERE id = ?`, id,
	)
	t, err := scanTemplate(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query template: %w", err)
	}
	return t, nil
}

// ListTemplates returns all templates, most used first.
func (s *Store) ListTemplates() ([]Template, error) {
	rows, err := s.conn.Query(
		`SELECT id, name, category, width, height, thumbnail, elements_json, usage_count, is_builtin, created_at, updated_at
		 FROM user_templates ORDER BY usage_count DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes a user template. Builtins are protected.
func (s *Store) DeleteTemplate(id string) error {
	t, err := s.GetTemplate(id)
	if err != nil {
		return err
	}
	if t.IsBuiltin {
		return ErrBuiltinTemplate
	}

	_, err = s.conn.Exec(`DELETE FROM user_templates WHERE id = ? AND is_builtin = 0`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// IncrementTemplateUsage bumps the usage counter. Best effort.
func (s *Store) IncrementTemplateUsage(id string) {
	s.conn.Exec(`UPDATE user_templates SET usage_count = usage_count + 1 WHERE id = ?`, id)
}

func scanTemplate(scan func(...any) error) (*Template, error) {
	var t Template
	var builtin int
	err := scan(&t.ID, &t.Name, &t.Category, &t.Width, &t.Height, &t.Thumbnail,
		&t.ElementsJSON, &t.UsageCount, &builtin, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.IsBuiltin = builtin != 0
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
