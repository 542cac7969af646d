package model

import (
	"errors"
	"fmt"
)

// Tool drawing tool
type Tool string

const (
	ToolPen    Tool = "pen"
	ToolEraser Tool = "eraser"
)

// BrushStyle brush rendering style
type BrushStyle string

const (
	BrushNormal BrushStyle = "normal"
	BrushPixel  BrushStyle = "pixel"
	BrushDotted BrushStyle = "dotted"
)

func (t Tool) String() string {
	return string(t)
}

func (b BrushStyle) String() string {
	return string(b)
}

// Valid reports whether the tool is one of the known tools.
func (t Tool) Valid() bool {
	return t == ToolPen || t == ToolEraser
}

// Valid reports whether the brush style is one of the known styles.
func (b BrushStyle) Valid() bool {
	return b == BrushNormal || b == BrushPixel || b == BrushDotted
}

// ErrInvalidStroke marks a stroke that fails validation.
var ErrInvalidStroke = errors.New("invalid stroke")

// Bounds is the accepted stroke width range.
type Bounds struct {
	MinWidth int
	MaxWidth int
}

// Stroke is one complete pen/eraser gesture. The JSON field names match
// what the canvas client emits: points is a flattened x,y sequence.
type Stroke struct {
	Tool        Tool       `json:"tool"`
	Color       string     `json:"color"`
	StrokeWidth int        `json:"strokeWidth"`
	BrushStyle  BrushStyle `json:"brushStyle"`
	Points      []float64  `json:"points"`
}

// Validate checks the stroke against the enumerated tool/brush sets, the
// configured width bounds, and the point sequence shape (at least one x,y
// pair, even length).
func (s *Stroke) Validate(b Bounds) error {
	if !s.Tool.Valid() {
		return fmt.Errorf("%w: unknown tool %q", ErrInvalidStroke, s.Tool)
	}
	if !s.BrushStyle.Valid() {
		return fmt.Errorf("%w: unknown brush style %q", ErrInvalidStroke, s.BrushStyle)
	}
	if s.StrokeWidth < b.MinWidth || s.StrokeWidth > b.MaxWidth {
		return fmt.Errorf("%w: stroke width %d outside [%d, %d]", ErrInvalidStroke, s.StrokeWidth, b.MinWidth, b.MaxWidth)
	}
	if len(s.Points) < 2 {
		return fmt.Errorf("%w: needs at least one coordinate pair", ErrInvalidStroke)
	}
	if len(s.Points)%2 != 0 {
		return fmt.Errorf("%w: odd point sequence length %d", ErrInvalidStroke, len(s.Points))
	}
	return nil
}
