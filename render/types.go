// Package render defines the options, palette, and sentinel errors for
// drawing grid search results.
package render

import "errors"

// Sentinel errors for rendering.
var (
	// ErrNilField is returned if a nil field pointer is passed.
	ErrNilField = errors.New("render: field is nil")
	// ErrBadOptions is returned when CellSize or Margin is out of range.
	ErrBadOptions = errors.New("render: invalid options")
	// ErrCellOutOfBounds is returned when a path cell or marker lies
	// outside the field.
	ErrCellOutOfBounds = errors.New("render: cell outside field bounds")
)

// Palette holds the hex colors of every drawn element.
type Palette struct {
	Background   string // canvas fill
	Free         string // free cell tile
	Obstacle     string // obstacle cell tile
	ObstacleMark string // cross drawn over obstacle tiles
	GridLine     string // dashed separator lines
	Label        string // coordinate labels and captions
	Path         string // path polyline and dot markers
	Arrow        string // direction arrowheads
	Start        string // start marker square
	Goal         string // goal marker star
}

// DefaultPalette returns the standard color scheme: dark navy obstacles,
// light free tiles, red path, green start, gold goal.
func DefaultPalette() Palette {
	return Palette{
		Background:   "#FFFFFF",
		Free:         "#F0F0F0",
		Obstacle:     "#1B2A4A",
		ObstacleMark: "#E74C3C",
		GridLine:     "#BBBBBB",
		Label:        "#555555",
		Path:         "#E74C3C",
		Arrow:        "#C0392B",
		Start:        "#27AE60",
		Goal:         "#F1C40F",
	}
}

// Options contains tunable parameters for rendering.
type Options struct {
	// CellSize is the pixel edge length of one cell tile. Minimum 8.
	CellSize int
	// Margin is the pixel border around the grid. Must be ≥ 0.
	Margin int
	// Title, when non-empty, is drawn centered above the grid.
	Title string
	// ShowCoordinates draws the "(x,y)" label inside each tile.
	ShowCoordinates bool
	// ShowStepIndices draws a numbered badge beside each path dot.
	ShowStepIndices bool
	// ShowArrows draws direction arrowheads between path steps.
	ShowArrows bool
	// ShowLegend draws the swatch legend band below the grid.
	ShowLegend bool
	// Palette selects the colors; zero fields fall back to defaults.
	Palette Palette
}

// DefaultOptions returns an Options with default settings: 96px cells,
// 40px margin, all decorations on, DefaultPalette colors.
func DefaultOptions() Options {
	return Options{
		CellSize:        96,
		Margin:          40,
		Title:           "",
		ShowCoordinates: true,
		ShowStepIndices: true,
		ShowArrows:      true,
		ShowLegend:      true,
		Palette:         DefaultPalette(),
	}
}
