// Package geogen translates theorems found by the GeoGen generator into
// construction programs.
//
// A theorem is written as an initial configuration ("Triangle: A, B, C"),
// one construction per line ("D = Midpoint({B, C})"), a goal
// ("CollinearPoints: A, D, E - ...") and optional notes. Each source line is
// kept as a "!" comment above its translation.
package geogen

import (
	"bufio"
	"fmt"
	"strings"

	"geometry/internal/geometry/fault"
)

// Theorem is one translated theorem.
type Theorem struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Convert translates GeoGen output. A file of "Theorem N" sections yields one
// theorem per section, named base+N+".geo"; a bare theorem yields base+".geo".
func Convert(text, base string) ([]Theorem, error) {
	lines := readLines(text)
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return nil, fault.Parse("empty input")
	}
	if !isRule(lines[start]) {
		source, err := convert(lines[start:], start+1)
		if err != nil {
			return nil, err
		}
		return []Theorem{{Name: base + ".geo", Source: source}}, nil
	}

	var theorems []Theorem
	i := start
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		if i+3 >= len(lines) || !isRule(lines[i]) || !strings.HasPrefix(lines[i+1], "Theorem ") || !isRule(lines[i+2]) {
			return nil, fault.AtLine(fault.Parse("expected a theorem header"), i+1)
		}
		number := len(theorems) + 1
		body := i + 3
		end := body
		for end < len(lines) && !isRule(lines[end]) {
			end++
		}
		source, err := convert(lines[body:end], body+1)
		if err != nil {
			return nil, fmt.Errorf("theorem %d: %w", number, err)
		}
		theorems = append(theorems, Theorem{Name: fmt.Sprintf("%s%d.geo", base, number), Source: source})
		i = end
	}
	return theorems, nil
}

// ConvertTheorem translates a single theorem.
func ConvertTheorem(text string) (string, error) {
	return convert(readLines(text), 1)
}

// convert translates the lines of one theorem. first is the number of its
// first line in the input, for error positions.
func convert(lines []string, first int) (string, error) {
	w := newWriter()
	i := 0
	skipBlank := func() {
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
	}

	skipBlank()
	if i == len(lines) {
		return "", fault.AtLine(fault.Parse("expected initial object"), first)
	}
	if err := w.initial(lines[i]); err != nil {
		return "", fault.AtLine(err, first+i)
	}
	i++

	// Constructions run until the goal, which is the only line of the form
	// "Kind: args - description".
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isGoal(line) {
			break
		}
		if err := w.construction(line); err != nil {
			return "", fault.AtLine(err, first+i)
		}
	}
	if i == len(lines) {
		return "", fault.AtLine(fault.Parse("expected goal"), first+i)
	}
	if err := w.goal(lines[i]); err != nil {
		return "", fault.AtLine(err, first+i)
	}
	i++

	notes := false
	for ; i < len(lines); i++ {
		if line := strings.TrimSpace(lines[i]); line != "" {
			if !notes {
				w.text()
				notes = true
			}
			w.comment(line)
		}
	}
	return w.String(), nil
}

func readLines(text string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines
}

func isRule(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && strings.Trim(line, "-") == ""
}

func isGoal(line string) bool {
	colon := strings.Index(line, ":")
	if colon < 0 || strings.Contains(line[:colon], "=") {
		return false
	}
	return strings.Contains(line[colon:], "-")
}

// ============================================================
// Output
// ============================================================

// writer accumulates program text. Helper objects (lines, triangles,
// circles, points) are emitted once and then referred to by name.
type writer struct {
	out       strings.Builder
	points    map[string]string
	lines     map[string]string
	triangles map[string]string
	circles   map[string]string
}

func newWriter() *writer {
	return &writer{
		points:    map[string]string{},
		lines:     map[string]string{},
		triangles: map[string]string{},
		circles:   map[string]string{},
	}
}

func (w *writer) text(lines ...string) {
	if len(lines) == 0 {
		w.out.WriteString("\n")
	}
	for _, line := range lines {
		w.out.WriteString(line)
		w.out.WriteString("\n")
	}
}

func (w *writer) comment(line string) {
	w.text("!" + line)
}

func (w *writer) object(value, prefix string, from map[string]string, modifiers string) string {
	if name, ok := from[value]; ok {
		return name
	}
	name := fmt.Sprintf("%s%d", prefix, len(from)+1)
	w.text(fmt.Sprintf("%s %s = %s", modifiers, name, value))
	from[value] = name
	return name
}

func (w *writer) point(value, modifiers string) string {
	return w.object(value, "p", w.points, modifiers)
}

func (w *writer) line(a, b string) string {
	return w.object(call("line", a, b), "l", w.lines, "[bounded] [gray]")
}

func (w *writer) triangle(a, b, c string) string {
	return w.object(call("triangle", a, b, c), "t", w.triangles, "[gray]")
}

func (w *writer) circle(value string) string {
	return w.object(value, "c", w.circles, "[gray]")
}

func (w *writer) circumcircle(args ...string) string {
	return w.circle(call("circumcircle", args...))
}

func (w *writer) String() string {
	return w.out.String()
}

func call(name string, args ...string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

// splitArgs splits a comma list, dropping GeoGen's set and tuple brackets.
func splitArgs(s string) []string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune("[](){}", r) {
			return -1
		}
		return r
	}, s)
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
