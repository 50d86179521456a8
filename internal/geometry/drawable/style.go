package drawable

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"geometry/internal/geometry/fault"
)

// Border is the stroke kind of a drawable.
type Border int

const (
	BorderLine Border = iota
	BorderNo
	BorderDot
	BorderDash
	BorderDashDot
)

// Dashes returns the dash pattern in logical units, or nil for a solid or
// hidden stroke.
func (b Border) Dashes() []float64 {
	switch b {
	case BorderDot:
		return []float64{1, 1}
	case BorderDash:
		return []float64{5, 5}
	case BorderDashDot:
		return []float64{5, 2, 1, 2}
	}
	return nil
}

func (b Border) String() string {
	switch b {
	case BorderNo:
		return "none"
	case BorderDot:
		return "dot"
	case BorderDash:
		return "dash"
	case BorderDashDot:
		return "dash_dot"
	}
	return "line"
}

// MarshalText lets draw plans carry the border by name.
func (b Border) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// EqualityGroup tags objects that are marked equal on the drawing.
type EqualityGroup int

const (
	EqualNone EqualityGroup = iota
	Equal1
	Equal2
	Equal3
	EqualV
	EqualO
)

func (g EqualityGroup) String() string {
	switch g {
	case Equal1:
		return "equal1"
	case Equal2:
		return "equal2"
	case Equal3:
		return "equal3"
	case EqualV:
		return "equalV"
	case EqualO:
		return "equalO"
	}
	return ""
}

func (g EqualityGroup) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	Black  = Color{0x00, 0x00, 0x00}
	Red    = Color{0xB2, 0x00, 0x00}
	Green  = Color{0x00, 0xB2, 0x00}
	Blue   = Color{0x00, 0x00, 0xB2}
	Orange = Color{0xB2, 0x66, 0x00}
	Violet = Color{0x94, 0x00, 0xD3}
	White  = Color{0xFF, 0xFF, 0xFF}
	Gray   = Color{0x80, 0x80, 0x80}
)

// Palette maps color modifier keywords to colors.
var Palette = map[string]Color{
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"orange": Orange,
	"violet": Violet,
	"white":  White,
	"gray":   Gray,
	"black":  Black,
}

// SVG formats the color as an SVG/CSS rgb() value.
func (c Color) SVG() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA formats the color with alpha for a canvas script.
func (c Color) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, alpha)
}

// Floats returns the components in [0, 1].
func (c Color) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

// Style is the mutable presentation record of a drawable. Modifiers are
// applied to DefaultStyle left to right.
type Style struct {
	Label   []string      `json:"label,omitempty"`
	Color   Color         `json:"color"`
	Border  Border        `json:"border"`
	Fill    bool          `json:"fill,omitempty"`
	Scale   float64       `json:"scale"`
	Bounded bool          `json:"bounded,omitempty"`
	Group   EqualityGroup `json:"group,omitempty"`
}

func DefaultStyle() Style {
	return Style{Color: Black, Border: BorderLine, Scale: 1}
}

// Visible reports whether anything of the outline or the fill is drawn.
func (s Style) Visible() bool {
	return s.Fill || s.Border != BorderNo
}

// Spans splits a name into alternating normal and subscript runs:
// "A_1" gives ["A", "1", ""], "O_{ab}c" gives ["O", "ab", "c"].
func Spans(name string) ([]string, error) {
	var out []string
	rest := name
	for {
		i := strings.IndexByte(rest, '_')
		if i < 0 || i == len(rest)-1 {
			return append(out, rest), nil
		}
		out = append(out, rest[:i])
		rest = rest[i+1:]
		if rest[0] == '{' {
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return nil, fault.Parse("expected '}' in name %q", name)
			}
			out = append(out, rest[1:end])
			rest = rest[end+1:]
			continue
		}
		_, size := utf8.DecodeRuneInString(rest)
		out = append(out, rest[:size])
		rest = rest[size:]
	}
}
