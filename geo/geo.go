// Package geo holds the rectangle geometry exchanged between the document
// transforms and the rendering engine capabilities.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an axis-aligned rectangle in CSS pixel units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains returns true if the point (x, y) is within the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// AspectRatio returns width over height, or 0 for an empty rectangle.
func (r Rect) AspectRatio() float64 {
	if r.H <= 0 {
		return 0
	}
	return r.W / r.H
}

// ParseViewBox parses an SVG viewBox attribute value: four numbers separated
// by whitespace and/or commas.
func ParseViewBox(s string) (Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
	if len(fields) != 4 {
		return Rect{}, fmt.Errorf("viewBox %q: need 4 numbers, got %d", s, len(fields))
	}
	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Rect{}, fmt.Errorf("viewBox %q: %w", s, err)
		}
		vals[i] = v
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// ParseLength parses a CSS-style length. A trailing "px" unit is accepted;
// unitless values are treated as pixels.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", s, err)
	}
	return v, nil
}
