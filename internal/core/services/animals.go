package services

import (
	"context"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ensure AnimalsExercise implements the interface.
var _ driving.Exercise = (*AnimalsExercise)(nil)

// AnimalsExercise walks through polymorphic sound processing.
type AnimalsExercise struct{}

// NewAnimalsExercise creates the animal walkthrough.
func NewAnimalsExercise() *AnimalsExercise {
	return &AnimalsExercise{}
}

// Info returns the exercise metadata.
func (e *AnimalsExercise) Info() domain.ExerciseInfo {
	return domain.ExerciseInfo{
		Name:    "animals",
		Title:   "Animal Sounds",
		Summary: "Required sound capability, two variants and a runtime capability probe",
	}
}

// silentObject has neither a sound nor a description.
type silentObject struct{}

// Run prints the walkthrough to w.
func (e *AnimalsExercise) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTranscript(w)
	return t.guard("animals", func() error {
		animals, err := demoAnimals()
		if err != nil {
			return err
		}

		t.println("Processing Animal Sounds:")
		t.println(ruler)
		for _, a := range animals {
			line, err := domain.ProcessSound(a)
			if err != nil {
				return err
			}
			t.println(line)
		}
		t.println()

		t.println("Testing Error Handling:")
		if _, err := domain.ProcessSound(silentObject{}); t.expect(err, domain.ErrCapabilityMissing, "Error: ") != nil {
			return err
		}
		if _, err := domain.NewDog("", 3); t.expect(err, domain.ErrInvalidInput, "Error: ") != nil {
			return err
		}
		if _, err := domain.NewCat("Misty", -1); t.expect(err, domain.ErrInvalidInput, "Error: ") != nil {
			return err
		}
		return nil
	})
}

func demoAnimals() ([]domain.Animal, error) {
	type entry struct {
		dog  bool
		name string
		age  int
	}
	var animals []domain.Animal
	for _, s := range []entry{
		{true, "Rex", 5},
		{false, "Whiskers", 3},
		{true, "Buddy", 2},
		{false, "Luna", 4},
	} {
		var (
			a   domain.Animal
			err error
		)
		if s.dog {
			a, err = domain.NewDog(s.name, s.age)
		} else {
			a, err = domain.NewCat(s.name, s.age)
		}
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, nil
}
