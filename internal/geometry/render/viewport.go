// Package render draws evaluated frames: SVG documents, HTML canvas
// scripts, PNG images, JSON draw plans and animated SVG.
package render

import (
	"math"

	"geometry/internal/geometry/drawable"
)

const pi180 = math.Pi / 180

// Viewport maps logical coordinates to an image of Width x Height pixels.
// The shorter side spans drawable.Extent logical units at zoom 1. Rotation
// is in degrees, Pan in pixels before zoom.
type Viewport struct {
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Zoom     float64         `json:"zoom"`
	Rotation float64         `json:"rotation"`
	Pan      drawable.Offset `json:"pan"`
}

// NewViewport returns an unzoomed, unrotated viewport.
func NewViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height, Zoom: 1}
}

func (v Viewport) minDim() float64 {
	return math.Min(v.Width, v.Height)
}

// Unit is the number of pixels per logical unit.
func (v Viewport) Unit() float64 {
	return v.minDim() * v.Zoom / drawable.Extent
}

func (v Viewport) center() drawable.Offset {
	return drawable.Offset{X: v.Width / 2, Y: v.Height / 2}
}

// ToScreen maps a logical offset to pixels.
func (v Viewport) ToScreen(o drawable.Offset) drawable.Offset {
	k := v.minDim() / drawable.Extent
	return o.Scale(k).Add(v.Pan).Rotate(v.Rotation).Scale(v.Zoom).Add(v.center())
}

// ToLogical maps pixels to a logical offset.
func (v Viewport) ToLogical(o drawable.Offset) drawable.Offset {
	k := v.minDim() / drawable.Extent
	return o.Sub(v.center()).Scale(1 / v.Zoom).Rotate(-v.Rotation).Sub(v.Pan).Scale(1 / k)
}

// Bounds is the logical rectangle covering the whole image.
func (v Viewport) Bounds() drawable.Rect {
	corners := []drawable.Offset{
		{X: 0, Y: 0}, {X: v.Width, Y: 0}, {X: 0, Y: v.Height}, {X: v.Width, Y: v.Height},
	}
	r := drawable.Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	for _, c := range corners {
		p := v.ToLogical(c)
		r.Left = math.Min(r.Left, p.X)
		r.Right = math.Max(r.Right, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}

// angle converts a logical angle to the screen, compensating the rotation.
func (v Viewport) angle(a float64) float64 {
	return a - v.Rotation*pi180
}

// valid reports whether the viewport can be drawn.
func (v Viewport) valid() bool {
	return v.Width > 0 && v.Height > 0 && v.Zoom > 0
}
