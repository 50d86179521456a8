package models

import (
	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/program"
	"geometry/internal/geometry/render"
)

// ============================================================
// Requests
// ============================================================

// View overrides the default image geometry. Zero fields keep the default.
type View struct {
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Zoom     float64         `json:"zoom"`
	Rotation float64         `json:"rotation"`
	Pan      drawable.Offset `json:"pan"`
}

type EvaluateRequest struct {
	Source string `json:"source"`
	Global string `json:"global"`
	Time   int    `json:"time"`
	View   *View  `json:"view,omitempty"`
}

type VideoRequest struct {
	EvaluateRequest
	Frames int     `json:"frames"`
	Rate   float64 `json:"rate"`
	Format string  `json:"format"` // svg (default) or html
}

// MoveRequest drags a movable point. The movable is chosen by Line when set,
// otherwise by the drawing offset At.
type MoveRequest struct {
	Source string           `json:"source"`
	Global string           `json:"global"`
	Time   int              `json:"time"`
	Line   int              `json:"line,omitempty"`
	At     *drawable.Offset `json:"at,omitempty"`
	To     drawable.Offset  `json:"to"`
}

type ProgramRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Global string `json:"global"`
}

type GeoGenRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ============================================================
// Responses
// ============================================================

type LineError struct {
	Line    int        `json:"line"`
	Code    fault.Code `json:"code"`
	Message string     `json:"message"`
}

// LineResult is the outcome of one statement.
type LineResult struct {
	Line    int              `json:"line"`
	Kind    string           `json:"kind,omitempty"`
	Label   []string         `json:"label,omitempty"`
	Error   *LineError       `json:"error,omitempty"`
	Movable *program.Movable `json:"movable,omitempty"`
}

type EvaluateResponse struct {
	Time      int          `json:"time"`
	Animated  bool         `json:"animated"`
	Plan      *render.Plan `json:"plan"`
	Lines     []LineResult `json:"lines"`
	Errors    []LineError  `json:"errors"`
	Functions []string     `json:"functions"`
}

type MoveResponse struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
}

type FunctionInfo struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Signature string `json:"signature"`
}
