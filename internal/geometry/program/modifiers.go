package program

import (
	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/fault"
)

type modifier func(*drawable.Style)

var keywords = map[string]modifier{
	"hide":       func(s *drawable.Style) { s.Border = drawable.BorderNo },
	"dot":        func(s *drawable.Style) { s.Border = drawable.BorderDot },
	"dash":       func(s *drawable.Style) { s.Border = drawable.BorderDash },
	"dash_dot":   func(s *drawable.Style) { s.Border = drawable.BorderDashDot },
	"fill":       func(s *drawable.Style) { s.Fill = true },
	"hide_label": func(s *drawable.Style) { s.Label = nil },
	"bounded":    func(s *drawable.Style) { s.Bounded = true },
	"equal1":     func(s *drawable.Style) { s.Group = drawable.Equal1 },
	"equal2":     func(s *drawable.Style) { s.Group = drawable.Equal2 },
	"equal3":     func(s *drawable.Style) { s.Group = drawable.Equal3 },
	"equalV":     func(s *drawable.Style) { s.Group = drawable.EqualV },
	"equalO":     func(s *drawable.Style) { s.Group = drawable.EqualO },
}

// Modifiers lists the accepted modifier keywords.
func Modifiers() []string {
	return []string{
		"hide", "dot", "dash", "dash_dot", "fill", "hide_label", "bounded",
		"equal1", "equal2", "equal3", "equalV", "equalO",
		"red", "green", "blue", "orange", "violet", "white", "gray", "black",
		"scale(x)",
	}
}

// modifiers reads the bracketed modifier groups at the start of a line:
// "[red] [fill]" or "[red, fill]".
func (c *cursor) modifiers() ([]modifier, error) {
	var out []modifier
	for c.accept("[") {
		for {
			m, err := c.modifier()
			if err != nil {
				return nil, err
			}
			out = append(out, m)
			if !c.accept(",") {
				break
			}
		}
		if err := c.expect("]"); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *cursor) modifier() (modifier, error) {
	word, ok := c.word()
	if !ok {
		return nil, fault.Parse("expected modifier at %q", clip(c.rest()))
	}
	if word == "scale" {
		if err := c.expect("("); err != nil {
			return nil, fault.Parse("modifier scale takes an argument")
		}
		k, ok := c.real()
		if !ok {
			return nil, fault.Parse("scale: expected a number at %q", clip(c.rest()))
		}
		if k <= 0 {
			return nil, fault.Parse("scale: argument must be positive, got %g", k)
		}
		if err := c.expect(")"); err != nil {
			return nil, err
		}
		return func(s *drawable.Style) { s.Scale = k }, nil
	}
	if color, ok := drawable.Palette[word]; ok {
		return func(s *drawable.Style) { s.Color = color }, nil
	}
	if m, ok := keywords[word]; ok {
		return m, nil
	}
	return nil, fault.Parse("invalid modifier: %s", word)
}
