// Package spark projects bounded numeric series onto drawing surfaces. The
// projection is stateless and idempotent: identical inputs always produce
// identical output.
package spark

import "strings"

// Point is one projected vertex of a sparkline polyline.
type Point struct {
	X, Y float64
}

// Project maps a series onto a width*height surface. Point i lands at
// x = i/(n-1)*w, y = h - (v-min)/range*h, so larger values sit higher
// (smaller y). A zero range substitutes 1 to avoid division by zero, putting
// a flat series on the baseline. Fewer than two points draw nothing.
func Project(values []float64, w, h float64) []Point {
	if len(values) < 2 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	pts := make([]Point, len(values))
	n := float64(len(values) - 1)
	for i, v := range values {
		pts[i] = Point{
			X: float64(i) / n * w,
			Y: h - (v-min)/rng*h,
		}
	}
	return pts
}

// blocks are the eight vertical-resolution glyphs used for terminal
// sparklines, lowest to highest.
var blocks = []rune("▁▂▃▄▅▆▇█")

// Line renders a series as a fixed-width run of block glyphs for terminal
// display. Fewer than two points yield an empty string, matching Project.
func Line(values []float64, width int) string {
	if len(values) < 2 || width <= 0 {
		return ""
	}

	// Resample to the requested width by nearest index.
	sampled := make([]float64, width)
	if width == 1 {
		sampled[0] = values[len(values)-1]
	} else {
		for i := 0; i < width; i++ {
			idx := i * (len(values) - 1) / (width - 1)
			sampled[i] = values[idx]
		}
	}

	pts := Project(sampled, float64(width), float64(len(blocks)-1))
	if pts == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range pts {
		level := int(float64(len(blocks)-1) - p.Y + 0.5)
		if level < 0 {
			level = 0
		}
		if level >= len(blocks) {
			level = len(blocks) - 1
		}
		b.WriteRune(blocks[level])
	}
	return b.String()
}
