package element

// Apply merges a partial change set into the element, field by field. Keys
// follow the wire names; unknown keys are ignored. The element ID and type
// are immutable and cannot be changed through Apply.
func (e *Element) Apply(changes map[string]any) {
	if v, ok := changes["x"].(float64); ok {
		e.X = v
	}
	if v, ok := changes["y"].(float64); ok {
		e.Y = v
	}
	if v, ok := changes["width"].(float64); ok {
		e.Width = v
	}
	if v, ok := changes["height"].(float64); ok {
		e.Height = v
	}
	if v, ok := changes["rotation"].(float64); ok {
		e.Rotation = v
	}
	if v, ok := changes["opacity"].(float64); ok {
		e.Opacity = v
	}
	if v, ok := changes["name"].(string); ok {
		e.Name = v
	}
	if v, ok := changes["locked"].(bool); ok {
		e.Locked = v
	}
	if v, ok := changes["visible"].(bool); ok {
		e.Visible = v
	}
	if v, ok := changes["groupId"].(string); ok {
		e.GroupID = v
	}

	if v, ok := changes["fill"].(string); ok {
		e.Fill = v
	}
	if v, ok := changes["stroke"].(string); ok {
		e.Stroke = v
	}
	if v, ok := changes["strokeWidth"].(float64); ok {
		e.StrokeWidth = v
	}
	if v, ok := changes["cornerRadius"].(float64); ok {
		e.CornerRadius = v
	}
	if v, ok := changes["sides"].(float64); ok {
		e.Sides = int(v)
	}
	if v, ok := changes["numPoints"].(float64); ok {
		e.NumPoints = int(v)
	}
	if v, ok := changes["innerRadius"].(float64); ok {
		e.InnerRadius = v
	}
	if v, ok := changes["gradient"].(map[string]any); ok {
		e.Gradient = gradientFromMap(v)
	}

	if v, ok := changes["points"].([]any); ok {
		points := make([]float64, 0, len(v))
		for _, p := range v {
			if f, ok := p.(float64); ok {
				points = append(points, f)
			}
		}
		e.Points = points
	}
	if v, ok := changes["pointerLength"].(float64); ok {
		e.PointerLength = v
	}
	if v, ok := changes["pointerWidth"].(float64); ok {
		e.PointerWidth = v
	}

	if v, ok := changes["text"].(string); ok {
		e.Text = v
	}
	if v, ok := changes["fontSize"].(float64); ok {
		e.FontSize = v
	}
	if v, ok := changes["fontFamily"].(string); ok {
		e.FontFamily = v
	}
	if v, ok := changes["fontStyle"].(string); ok {
		e.FontStyle = v
	}
	if v, ok := changes["align"].(string); ok {
		e.Align = v
	}
	if v, ok := changes["letterSpacing"].(float64); ok {
		e.LetterSpacing = v
	}
	if v, ok := changes["lineHeight"].(float64); ok {
		e.LineHeight = v
	}
	if v, ok := changes["textDecoration"].(string); ok {
		e.Decoration = v
	}
	if v, ok := changes["shadow"].(map[string]any); ok {
		e.Shadow = shadowFromMap(v)
	}

	if v, ok := changes["src"].(string); ok {
		e.Src = v
	}
}

func gradientFromMap(m map[string]any) *Gradient {
	g := &Gradient{}
	if v, ok := m["enabled"].(bool); ok {
		g.Enabled = v
	}
	if v, ok := m["angle"].(float64); ok {
		g.Angle = v
	}
	if stops, ok := m["colorStops"].([]any); ok {
		for _, s := range stops {
			if c, ok := s.(string); ok {
				g.ColorStops = append(g.ColorStops, c)
			}
		}
	}
	return g
}

func shadowFromMap(m map[string]any) *Shadow {
	s := &Shadow{}
	if v, ok := m["color"].(string); ok {
		s.Color = v
	}
	if v, ok := m["blur"].(float64); ok {
		s.Blur = v
	}
	if v, ok := m["offsetX"].(float64); ok {
		s.OffsetX = v
	}
	if v, ok := m["offsetY"].(float64); ok {
		s.OffsetY = v
	}
	return s
}
