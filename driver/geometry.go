// driver/geometry.go
package driver

// Point is a Cartesian coordinate measured from the top-left of the viewport.
type Point struct {
	X float64
	Y float64
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Origin is the upper-left corner of the box.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Termination is the bottom-right corner of the box.
func (r Rect) Termination() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }
