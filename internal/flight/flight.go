// Package flight drives the "item flies into the cart" visual confirmation.
// Each spawned animation lives exactly Duration, then removes itself from the
// active set whether or not the surrounding UI ever rendered it.
package flight

import "math"

// Rect is a screen-space bounding box, in CSS pixel coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the rect's center point.
func (r Rect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// terminalSize is the square the image collapses into over the cart icon.
const terminalSize = 30.0

// endRect is where the animation finishes: a terminalSize square centered on
// the target anchor.
func endRect(target Rect) Rect {
	cx, cy := target.Center()
	return Rect{
		Top:    cy - terminalSize/2,
		Left:   cx - terminalSize/2,
		Width:  terminalSize,
		Height: terminalSize,
	}
}

// easeOutCubic approximates the source transition curve: fast start, gentle
// settle into the cart icon.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// interpolate returns the rect at progress p in [0,1]: pinned to origin at 0,
// the terminal square centered on target at 1.
func interpolate(origin, target Rect, p float64) Rect {
	p = math.Min(math.Max(p, 0), 1)
	e := easeOutCubic(p)
	end := endRect(target)
	return Rect{
		Top:    lerp(origin.Top, end.Top, e),
		Left:   lerp(origin.Left, end.Left, e),
		Width:  lerp(origin.Width, end.Width, e),
		Height: lerp(origin.Height, end.Height, e),
	}
}
