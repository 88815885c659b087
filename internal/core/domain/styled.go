package domain

import "fmt"

// Style defaults applied when no option overrides them.
const (
	DefaultColor       = "Unknown"
	DefaultBorderWidth = 1.0
)

// Style is the shared base state of styled shapes.
type Style struct {
	Color       string
	BorderWidth float64
}

// StyleOption configures a Style.
type StyleOption func(*Style)

// WithColor sets the colour.
func WithColor(color string) StyleOption {
	return func(s *Style) {
		s.Color = color
	}
}

// WithBorderWidth sets the border width. Zero is allowed, negatives are not.
func WithBorderWidth(width float64) StyleOption {
	return func(s *Style) {
		s.BorderWidth = width
	}
}

// NewStyle creates a style from the defaults and opts.
func NewStyle(opts ...StyleOption) (Style, error) {
	s := Style{Color: DefaultColor, BorderWidth: DefaultBorderWidth}
	for _, opt := range opts {
		opt(&s)
	}
	if !(s.BorderWidth >= 0) {
		return Style{}, NewError(ErrInvalidInput, "Border width cannot be negative")
	}
	return s, nil
}

// Area is the base contribution to a styled shape's area. It is always zero.
func (s Style) Area() float64 {
	return 0.0
}

// Description returns colour and border width.
func (s Style) Description() string {
	return fmt.Sprintf("Shape with color %s and border width %.2f", s.Color, s.BorderWidth)
}

// StyledRectangle is a rectangle carrying a Style.
type StyledRectangle struct {
	Style
	width  float64
	height float64
}

// NewStyledRectangle validates the style first, then the dimensions.
func NewStyledRectangle(width, height float64, opts ...StyleOption) (*StyledRectangle, error) {
	style, err := NewStyle(opts...)
	if err != nil {
		return nil, err
	}
	if !positive(width) || !positive(height) {
		return nil, NewError(ErrInvalidInput, "Width and height must be positive")
	}
	return &StyledRectangle{Style: style, width: width, height: height}, nil
}

// Width returns the width.
func (r *StyledRectangle) Width() float64 {
	return r.width
}

// Height returns the height.
func (r *StyledRectangle) Height() float64 {
	return r.height
}

// Area adds the base contribution to width * height.
func (r *StyledRectangle) Area() float64 {
	return r.Style.Area() + r.width*r.height
}

// Description includes dimensions and style.
func (r *StyledRectangle) Description() string {
	return fmt.Sprintf("Rectangle with width %.2f, height %.2f, color %s, and border width %.2f",
		r.width, r.height, r.Color, r.BorderWidth)
}
