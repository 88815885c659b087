package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// SoundMaker is the capability every animal must provide.
type SoundMaker interface {
	MakeSound() string
}

// Describer returns a human-readable description.
type Describer interface {
	Description() string
}

// Animal is a named, aged creature that makes a sound.
type Animal interface {
	SoundMaker
	Describer
	Name() string
	Age() int
}

// Ensure the variants implement Animal.
var (
	_ Animal = (*Dog)(nil)
	_ Animal = (*Cat)(nil)
)

// animal is the shared base. It has no sound of its own, so only the
// variants below can be constructed.
type animal struct {
	kind string
	name string
	age  int
}

func newAnimal(kind, name string, age int) (animal, error) {
	if strings.TrimSpace(name) == "" {
		return animal{}, NewError(ErrInvalidInput, "Name cannot be empty")
	}
	if age < 0 {
		return animal{}, NewError(ErrInvalidInput, "Age cannot be negative")
	}
	return animal{kind: kind, name: name, age: age}, nil
}

// Name returns the name as given.
func (a *animal) Name() string {
	return a.name
}

// Age returns the age in years.
func (a *animal) Age() int {
	return a.age
}

// Description names the variant, the animal and its age.
func (a *animal) Description() string {
	return fmt.Sprintf("%s named %s, age %d", a.kind, a.name, a.age)
}

// Dog barks.
type Dog struct {
	animal
}

// NewDog creates a dog.
func NewDog(name string, age int) (*Dog, error) {
	base, err := newAnimal("Dog", name, age)
	if err != nil {
		return nil, err
	}
	return &Dog{animal: base}, nil
}

// MakeSound returns the dog's bark.
func (d *Dog) MakeSound() string {
	return fmt.Sprintf("%s says: Woof! Woof!", d.name)
}

// Cat meows.
type Cat struct {
	animal
}

// NewCat creates a cat.
func NewCat(name string, age int) (*Cat, error) {
	base, err := newAnimal("Cat", name, age)
	if err != nil {
		return nil, err
	}
	return &Cat{animal: base}, nil
}

// MakeSound returns the cat's meow.
func (c *Cat) MakeSound() string {
	return fmt.Sprintf("%s says: Meow!", c.name)
}

// ProcessSound probes v for the sound and description capabilities at
// runtime and combines them. Values lacking either, and nil pointers,
// yield ErrCapabilityMissing.
func ProcessSound(v any) (string, error) {
	maker, ok := v.(SoundMaker)
	if !ok || isNilPointer(v) {
		return "", NewError(ErrCapabilityMissing, "Object must have a MakeSound method")
	}
	describer, ok := v.(Describer)
	if !ok {
		return "", NewError(ErrCapabilityMissing, "Object must have a MakeSound method")
	}
	sound := maker.MakeSound()
	return fmt.Sprintf("%s makes sound: %s", describer.Description(), sound), nil
}

// isNilPointer reports whether v is an interface holding a nil pointer.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
