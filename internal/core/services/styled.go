package services

import (
	"context"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ensure StyledExercise implements the interface.
var _ driving.Exercise = (*StyledExercise)(nil)

const styledErrPrefix = "Error creating rectangle: "

// StyledExercise walks through styled rectangles built on a shared base style.
type StyledExercise struct{}

// NewStyledExercise creates the styled shape walkthrough.
func NewStyledExercise() *StyledExercise {
	return &StyledExercise{}
}

// Info returns the exercise metadata.
func (e *StyledExercise) Info() domain.ExerciseInfo {
	return domain.ExerciseInfo{
		Name:    "styled",
		Title:   "Styled Shapes",
		Summary: "Shared color and border state with an override that calls the base area",
	}
}

// Run prints the walkthrough to w.
func (e *StyledExercise) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTranscript(w)
	return t.guard("styled", func() error {
		rect1, err := domain.NewStyledRectangle(5.0, 3.0,
			domain.WithColor("Blue"), domain.WithBorderWidth(2.0))
		if err != nil {
			return err
		}
		rect2, err := domain.NewStyledRectangle(4.0, 6.0, domain.WithColor("Red"))
		if err != nil {
			return err
		}

		for i, r := range []*domain.StyledRectangle{rect1, rect2} {
			t.printf("Rectangle %d Demonstration:", i+1)
			t.println(r.Description())
			t.printf("Area: %.2f square units", r.Area())
			t.println()
		}

		t.println("Testing Error Handling:")
		_, err = domain.NewStyledRectangle(-1, 5, domain.WithColor("Green"))
		if t.expect(err, domain.ErrInvalidInput, styledErrPrefix) != nil {
			return err
		}
		_, err = domain.NewStyledRectangle(2, 3,
			domain.WithColor("Yellow"), domain.WithBorderWidth(-1))
		if t.expect(err, domain.ErrInvalidInput, styledErrPrefix) != nil {
			return err
		}
		return nil
	})
}
