package store

import (
	"encoding/json"
	"fmt"

	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

// seedBuiltinTemplates inserts the builtin template catalog on first run.
func (s *Store) seedBuiltinTemplates() error {
	var count int
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM user_templates WHERE is_builtin = 1`).Scan(&count); err != nil {
		return fmt.Errorf("count builtins: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range builtinTemplates() {
		t.ID = typeid.NewTemplateID()
		t.IsBuiltin = true
		if err := s.SaveTemplate(t); err != nil {
			return err
		}
	}
	return nil
}

func builtinTemplates() []Template {
	header := []element.Element{
		element.NewRect(element.Base{
			X: 0, Y: 0, Width: 600, Height: 200, Opacity: 1, Name: "Background",
		}, "#1a1a2e", "", 0, 0, &element.Gradient{
			Enabled:    true,
			ColorStops: []string{"#1a1a2e", "#7c3aed"},
			Angle:      45,
		}),
		element.NewText(element.Base{
			X: 40, Y: 70, Width: 520, Height: 60, Opacity: 1, Name: "Title",
		}, element.TextOptions{
			Text:       "Your Newsletter",
			FontSize:   42,
			FontFamily: "Inter",
			Fill:       "#ffffff",
			FontStyle:  "bold",
			Align:      "center",
			LineHeight: 1.2,
		}),
	}

	quote := []element.Element{
		element.NewRect(element.Base{
			X: 0, Y: 0, Width: 1080, Height: 1080, Opacity: 1, Name: "Background",
		}, "#f5f0e8", "", 0, 0, nil),
		element.NewRect(element.Base{
			X: 90, Y: 90, Width: 900, Height: 900, Opacity: 1, Name: "Frame",
		}, "", "#1a1a2e", 3, 12, nil),
		element.NewText(element.Base{
			X: 160, Y: 420, Width: 760, Height: 240, Opacity: 1, Name: "Quote",
		}, element.TextOptions{
			Text:       "“Write something worth reading.”",
			FontSize:   56,
			FontFamily: "Georgia",
			Fill:       "#1a1a2e",
			FontStyle:  "italic",
			Align:      "center",
			LineHeight: 1.4,
		}),
	}

	return []Template{
		{
			Name:         "Gradient Header",
			Category:     "newsletter",
			Width:        600,
			Height:       200,
			ElementsJSON: mustElementsJSON(header),
		},
		{
			Name:         "Quote Card",
			Category:     "social",
			Width:        1080,
			Height:       1080,
			ElementsJSON: mustElementsJSON(quote),
		},
	}
}

func mustElementsJSON(elements []element.Element) string {
	data, err := json.Marshal(elements)
	if err != nil {
		panic(err)
	}
	return string(data)
}
