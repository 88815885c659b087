// Package domain defines the exercise entities for classwork.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Vehicle, Car, Bike: engine start/stop overriding
//   - Shape, Circle, Rectangle: polymorphic area calculation
//   - Style, StyledRectangle: shared base state and calling the base method
//   - Animal, Dog, Cat: required capabilities and a runtime capability probe
//   - Error: the classified error taxonomy shared by every exercise
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
