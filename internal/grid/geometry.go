// pattern: Functional Core

package grid

import "math"

// Point is a position in container coordinates.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Hypot(dx, dy)
}

// Add offsets the point by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector is a 2D displacement.
type Vector struct {
	X float64
	Y float64
}

// Size holds container or region dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Rectangle is an axis-aligned region within the container.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive,
// so adjacent regions never both claim a boundary point.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Size returns the rectangle's dimensions.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}
