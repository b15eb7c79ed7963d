// Package physics provides plane geometry and distance utilities.
package physics

import "math"

// Point is a position on the game plane in arbitrary units.
type Point struct {
	X, Y float64
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p.X, p.Y, q.X, q.Y)
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
// Points exactly on the edge count as inside.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// PolarToCartesian converts a heading in degrees and a magnitude into
// x and y components. 0 degrees points along +x, 90 along +y.
func PolarToCartesian(degrees, magnitude float64) (x, y float64) {
	rad := ToRadians(degrees)
	return magnitude * math.Cos(rad), magnitude * math.Sin(rad)
}
