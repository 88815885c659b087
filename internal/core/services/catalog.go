package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driven"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
	"github.com/custodia-labs/classwork/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driving.ExerciseCatalog = (*Catalog)(nil)

// Catalog holds the registered exercises in registration order.
type Catalog struct {
	exercises []driving.Exercise
	byName    map[string]driving.Exercise
	now       func() time.Time
}

// NewCatalog creates a catalog of the given exercises.
// Later registrations with a name already taken are ignored.
func NewCatalog(exercises ...driving.Exercise) *Catalog {
	c := &Catalog{
		byName: make(map[string]driving.Exercise, len(exercises)),
		now:    time.Now,
	}
	for _, ex := range exercises {
		if ex == nil {
			continue
		}
		name := ex.Info().Name
		if _, exists := c.byName[name]; exists {
			logger.Warn("catalog: duplicate exercise %q ignored", name)
			continue
		}
		c.byName[name] = ex
		c.exercises = append(c.exercises, ex)
	}
	return c
}

// NewDefaultCatalog registers the five exercises, with the file
// handler walkthrough working in fsys.
func NewDefaultCatalog(fsys driven.FileSystem) *Catalog {
	return NewCatalog(
		NewVehiclesExercise(),
		NewShapesExercise(),
		NewStyledExercise(),
		NewAnimalsExercise(),
		NewFilesExercise(fsys),
	)
}

// List returns exercise metadata in registration order.
func (c *Catalog) List() []domain.ExerciseInfo {
	infos := make([]domain.ExerciseInfo, 0, len(c.exercises))
	for _, ex := range c.exercises {
		infos = append(infos, ex.Info())
	}
	return infos
}

// Get returns the exercise with the given name.
func (c *Catalog) Get(name string) (driving.Exercise, error) {
	ex, ok := c.byName[name]
	if !ok {
		return nil, domain.NewError(domain.ErrNotFound, fmt.Sprintf("exercise %q not found", name))
	}
	return ex, nil
}

// Run runs one exercise and reports on the run.
func (c *Catalog) Run(ctx context.Context, name string, w io.Writer) (domain.RunReport, error) {
	ex, err := c.Get(name)
	if err != nil {
		return domain.RunReport{}, err
	}
	return c.run(ctx, ex, w)
}

// RunAll runs every exercise in order, each preceded by a title header.
// It stops at the first exercise that fails and returns the reports so far.
func (c *Catalog) RunAll(ctx context.Context, w io.Writer) ([]domain.RunReport, error) {
	reports := make([]domain.RunReport, 0, len(c.exercises))
	for i, ex := range c.exercises {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return reports, err
			}
		}
		if _, err := fmt.Fprintf(w, "=== %s ===\n\n", ex.Info().Title); err != nil {
			return reports, err
		}

		report, err := c.run(ctx, ex, w)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (c *Catalog) run(ctx context.Context, ex driving.Exercise, w io.Writer) (domain.RunReport, error) {
	report := domain.RunReport{
		RunID:     uuid.NewString(),
		Exercise:  ex.Info().Name,
		StartedAt: c.now(),
	}
	logger.Section(ex.Info().Title)
	log := logger.Run(report.RunID)
	log.Info("exercise %s started", report.Exercise)

	err := ex.Run(ctx, w)
	report.Duration = c.now().Sub(report.StartedAt)
	if err != nil {
		log.Warn("exercise %s failed after %s: %v", report.Exercise, report.Duration, err)
		return report, fmt.Errorf("run %s: %w", report.Exercise, err)
	}

	log.Info("exercise %s finished in %s", report.Exercise, report.Duration)
	return report, nil
}
