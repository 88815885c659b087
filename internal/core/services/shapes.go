package services

import (
	"context"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ensure ShapesExercise implements the interface.
var _ driving.Exercise = (*ShapesExercise)(nil)

// ShapesExercise walks through the shape hierarchy and the total area helper.
type ShapesExercise struct{}

// NewShapesExercise creates the shape walkthrough.
func NewShapesExercise() *ShapesExercise {
	return &ShapesExercise{}
}

// Info returns the exercise metadata.
func (e *ShapesExercise) Info() domain.ExerciseInfo {
	return domain.ExerciseInfo{
		Name:    "shapes",
		Title:   "Shape Areas",
		Summary: "Abstract shape with circle and rectangle variants and a total area helper",
	}
}

// Run prints the walkthrough to w.
func (e *ShapesExercise) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTranscript(w)
	return t.guard("shapes", func() error {
		shapes, err := demoShapes()
		if err != nil {
			return err
		}

		t.println("Individual Shape Details:")
		t.println(ruler)
		for _, s := range shapes {
			t.println(s.Description())
			t.printf("Area: %.2f square units", s.Area())
			t.println()
		}

		t.println(ruler)
		t.printf("Total Area of All Shapes: %.2f square units", domain.TotalArea(shapes))

		t.println("\nTesting Error Handling:")
		if _, err := domain.NewCircle(-1); t.expect(err, domain.ErrInvalidInput, "Error: ") != nil {
			return err
		}
		if _, err := domain.NewRectangle(0, 5); t.expect(err, domain.ErrInvalidInput, "Error: ") != nil {
			return err
		}
		return nil
	})
}

func demoShapes() ([]domain.Shape, error) {
	c1, err := domain.NewCircle(5.0)
	if err != nil {
		return nil, err
	}
	r1, err := domain.NewRectangle(4.0, 6.0)
	if err != nil {
		return nil, err
	}
	c2, err := domain.NewCircle(2.5)
	if err != nil {
		return nil, err
	}
	r2, err := domain.NewRectangle(3.0, 8.0)
	if err != nil {
		return nil, err
	}
	return []domain.Shape{c1, r1, c2, r2}, nil
}
