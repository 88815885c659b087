package services

import (
	"context"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ensure VehiclesExercise implements the interface.
var _ driving.Exercise = (*VehiclesExercise)(nil)

// VehiclesExercise walks through the vehicle hierarchy.
type VehiclesExercise struct{}

// NewVehiclesExercise creates the vehicle walkthrough.
func NewVehiclesExercise() *VehiclesExercise {
	return &VehiclesExercise{}
}

// Info returns the exercise metadata.
func (e *VehiclesExercise) Info() domain.ExerciseInfo {
	return domain.ExerciseInfo{
		Name:    "vehicles",
		Title:   "Vehicle Hierarchy",
		Summary: "Base vehicle with car and bike variants overriding start and description",
	}
}

// Run prints the walkthrough to w.
func (e *VehiclesExercise) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTranscript(w)
	return t.guard("vehicles", func() error {
		car := domain.NewCar("Toyota", "Camry", 2023, 4)
		bike := domain.NewBike("Harley-Davidson", "Sportster", 2022, true)

		t.println("Car Demonstration:")
		t.println(car.Description())
		t.println(car.StartEngine())
		t.println(car.StopEngine())
		t.println()

		t.println("Bike Demonstration:")
		t.println(bike.Description())
		t.println(bike.StartEngine())
		t.println(bike.StopEngine())
		t.println()

		t.println("Polymorphic Behavior:")
		for _, v := range []domain.Vehicle{car, bike} {
			t.printf("%s: %s", v.Kind(), v.Description())
			t.printf("%s: %s", v.Kind(), v.StartEngine())
			t.println()
		}
		return nil
	})
}
