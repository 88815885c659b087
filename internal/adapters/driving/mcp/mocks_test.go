package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// mockCatalog is a mock implementation of driving.ExerciseCatalog.
type mockCatalog struct {
	infos  []domain.ExerciseInfo
	output string
	err    error
	ran    []string
}

func (m *mockCatalog) List() []domain.ExerciseInfo {
	return m.infos
}

func (m *mockCatalog) Get(name string) (driving.Exercise, error) {
	return nil, m.lookup(name)
}

func (m *mockCatalog) Run(_ context.Context, name string, w io.Writer) (domain.RunReport, error) {
	if err := m.lookup(name); err != nil {
		return domain.RunReport{}, err
	}
	if m.err != nil {
		return domain.RunReport{}, m.err
	}
	m.ran = append(m.ran, name)
	fmt.Fprint(w, m.output)
	return domain.RunReport{RunID: "run-" + name, Exercise: name}, nil
}

func (m *mockCatalog) RunAll(ctx context.Context, w io.Writer) ([]domain.RunReport, error) {
	reports := make([]domain.RunReport, 0, len(m.infos))
	for _, info := range m.infos {
		r, err := m.Run(ctx, info.Name, w)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func (m *mockCatalog) lookup(name string) error {
	for _, info := range m.infos {
		if info.Name == name {
			return nil
		}
	}
	return domain.NewError(domain.ErrNotFound, fmt.Sprintf("exercise %q not found", name))
}

func testCatalog() *mockCatalog {
	return &mockCatalog{
		infos: []domain.ExerciseInfo{
			{Name: "shapes", Title: "Shape Areas", Summary: "Circle and rectangle areas"},
			{Name: "animals", Title: "Animal Sounds", Summary: "Dogs, cats and a capability probe"},
		},
		output: "Circle with radius 5.00\nArea: 78.54 square units\n",
	}
}
