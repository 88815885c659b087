package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyle_Defaults(t *testing.T) {
	s, err := NewStyle()

	require.NoError(t, err)
	assert.Equal(t, DefaultColor, s.Color)
	assert.Equal(t, DefaultBorderWidth, s.BorderWidth)
	assert.Equal(t, 0.0, s.Area())
	assert.Equal(t, "Shape with color Unknown and border width 1.00", s.Description())
}

func TestNewStyle_BorderWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		wantErr bool
	}{
		{"zero allowed", 0, false},
		{"positive", 2.5, false},
		{"negative rejected", -1, true},
		{"tiny negative rejected", -0.0001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStyle(WithBorderWidth(tt.width))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.EqualError(t, err, "Border width cannot be negative")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewStyledRectangle(t *testing.T) {
	r, err := NewStyledRectangle(5.0, 3.0, WithColor("Blue"), WithBorderWidth(2.0))

	require.NoError(t, err)
	assert.Equal(t, 15.0, r.Area())
	assert.Equal(t, "Rectangle with width 5.00, height 3.00, color Blue, and border width 2.00", r.Description())
}

func TestNewStyledRectangle_DefaultBorder(t *testing.T) {
	r, err := NewStyledRectangle(4.0, 6.0, WithColor("Red"))

	require.NoError(t, err)
	assert.Equal(t, 24.0, r.Area())
	assert.Equal(t, 1.0, r.BorderWidth)
	assert.Equal(t, "Rectangle with width 4.00, height 6.00, color Red, and border width 1.00", r.Description())
}

func TestStyledRectangle_AreaIncludesBase(t *testing.T) {
	r, err := NewStyledRectangle(2, 3)
	require.NoError(t, err)

	assert.Equal(t, r.Style.Area()+r.Width()*r.Height(), r.Area())
	assert.Equal(t, "Shape with color Unknown and border width 1.00", r.Style.Description())
}

func TestNewStyledRectangle_Validation(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		opts          []StyleOption
		wantMsg       string
	}{
		{"negative width", -1, 5, []StyleOption{WithColor("Green")}, "Width and height must be positive"},
		{"zero height", 2, 0, nil, "Width and height must be positive"},
		{"negative border", 2, 3, []StyleOption{WithColor("Yellow"), WithBorderWidth(-1)}, "Border width cannot be negative"},
		{"border checked first", -1, -1, []StyleOption{WithBorderWidth(-1)}, "Border width cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewStyledRectangle(tt.width, tt.height, tt.opts...)

			assert.Nil(t, r)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
