package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
)

// Exercise is a self-contained demonstration with a printed walkthrough.
type Exercise interface {
	// Info returns the exercise name, title and summary.
	Info() domain.ExerciseInfo

	// Run prints the walkthrough to w.
	// Failures inside the walkthrough are printed, not returned. Only a
	// cancelled context or a failing writer ends a run with an error.
	Run(ctx context.Context, w io.Writer) error
}

// ExerciseCatalog lists and runs the registered exercises.
type ExerciseCatalog interface {
	// List returns exercise metadata in registration order.
	List() []domain.ExerciseInfo

	// Get returns the exercise with the given name.
	// Returns domain.ErrNotFound if no exercise has that name.
	Get(name string) (Exercise, error)

	// Run runs one exercise and reports on the run.
	Run(ctx context.Context, name string, w io.Writer) (domain.RunReport, error)

	// RunAll runs every exercise in order, separated by title headers.
	RunAll(ctx context.Context, w io.Writer) ([]domain.RunReport, error)
}
