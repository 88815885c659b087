package domain

import (
	"fmt"
	"math"
)

// Shape is anything with an area and a description.
type Shape interface {
	// Area returns the non-negative area.
	Area() float64

	// Description returns the shape parameters formatted for display.
	Description() string
}

// Ensure the variants implement Shape.
var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*StyledRectangle)(nil)
)

// Circle is a shape defined by its radius.
type Circle struct {
	radius float64
}

// NewCircle creates a circle. The radius must be positive.
func NewCircle(radius float64) (*Circle, error) {
	if !positive(radius) {
		return nil, NewError(ErrInvalidInput, "Radius must be positive")
	}
	return &Circle{radius: radius}, nil
}

// Radius returns the radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Area returns pi * r^2.
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Description returns the radius to two decimals.
func (c *Circle) Description() string {
	return fmt.Sprintf("Circle with radius %.2f", c.radius)
}

// Rectangle is a shape defined by width and height.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle creates a rectangle. Width and height must be positive.
func NewRectangle(width, height float64) (*Rectangle, error) {
	if !positive(width) || !positive(height) {
		return nil, NewError(ErrInvalidInput, "Width and height must be positive")
	}
	return &Rectangle{width: width, height: height}, nil
}

// Width returns the width.
func (r *Rectangle) Width() float64 {
	return r.width
}

// Height returns the height.
func (r *Rectangle) Height() float64 {
	return r.height
}

// Area returns width * height.
func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

// Description returns width and height to two decimals.
func (r *Rectangle) Description() string {
	return fmt.Sprintf("Rectangle with width %.2f and height %.2f", r.width, r.height)
}

// TotalArea sums the areas of shapes in order. Nil entries, including
// nil pointers of a concrete shape type, are skipped.
func TotalArea(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		if s == nil || isNilPointer(s) {
			continue
		}
		total += s.Area()
	}
	return total
}

// positive rejects zero, negatives and NaN.
func positive(v float64) bool {
	return v > 0
}
