package program

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
)

// cursor walks one source line. Positions are byte offsets into text.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) rest() string {
	return c.text[c.pos:]
}

func (c *cursor) atEnd() bool {
	c.skipSpace()
	return c.pos == len(c.text)
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		c.pos += size
	}
}

// accept consumes s after optional spaces.
func (c *cursor) accept(s string) bool {
	c.skipSpace()
	if strings.HasPrefix(c.rest(), s) {
		c.pos += len(s)
		return true
	}
	return false
}

func (c *cursor) expect(s string) error {
	if c.accept(s) {
		return nil
	}
	return fault.Parse("expected %q at %q", s, clip(c.rest()))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("_'{}", r)
}

// word consumes a name: a letter followed by letters, digits or _'{} runes.
// The bare imaginary unit is not a name.
func (c *cursor) word() (string, bool) {
	c.skipSpace()
	start := c.pos
	end := start
	for end < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[end:])
		if !isWordRune(r) || (end == start && !unicode.IsLetter(r)) {
			break
		}
		end += size
	}
	w := c.text[start:end]
	if w == "" || w == "i" {
		return "", false
	}
	c.pos = end
	return w, true
}

// real consumes an optionally negative decimal number.
func (c *cursor) real() (float64, bool) {
	c.skipSpace()
	start := c.pos
	p := start
	if p < len(c.text) && c.text[p] == '-' {
		p++
	}
	digits := p
	for p < len(c.text) && strings.IndexByte(".0123456789", c.text[p]) >= 0 {
		p++
	}
	if p == digits {
		return 0, false
	}
	x, err := strconv.ParseFloat(c.text[start:p], 64)
	if err != nil {
		return 0, false
	}
	c.pos = p
	return x, true
}

// complex consumes a numeric literal: a real number with an optional
// imaginary suffix, or the bare units i and -i.
func (c *cursor) complex() (algebra.Complex, bool) {
	switch {
	case c.accept("-i"):
		return algebra.I.Neg(), true
	case c.accept("i"):
		return algebra.I, true
	}
	x, ok := c.real()
	if !ok {
		return algebra.Complex{}, false
	}
	if strings.HasPrefix(c.rest(), "i") {
		c.pos++
		return algebra.Imag(x), true
	}
	return algebra.Real(x), true
}

// index consumes a postfix accessor such as ".2".
func (c *cursor) index() (int, bool) {
	rest := c.rest()
	if len(rest) < 2 || rest[0] != '.' || rest[1] < '0' || rest[1] > '9' {
		return 0, false
	}
	end := 1
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(rest[1:end])
	if err != nil {
		return 0, false
	}
	c.pos += end
	return n, true
}

// clip shortens text quoted in error messages.
func clip(s string) string {
	const limit = 24
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
