package report

import "math"

// Rect is a rectangle in hundredths of an inch.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Padding is inner spacing in hundredths of an inch.
type Padding struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// IsZero reports whether all sides are zero.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

// FloatTolerance is the default tolerance used to match cell edges.
const FloatTolerance = 0.5

// FloatsEqual reports whether a and b differ by less than tol.
func FloatsEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
