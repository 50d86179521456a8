package handlers

import "geometry/internal/geometry/drawable"

func offset(x, y float64) drawable.Offset {
	return drawable.Offset{X: x, Y: y}
}

func ptr[T any](v T) *T {
	return &v
}
