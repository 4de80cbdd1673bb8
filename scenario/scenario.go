// Package scenario defines the YAML wire types, validation, and sentinel
// errors for problem-instance files.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for scenario parsing and validation.
var (
	// ErrBadDimensions indicates non-positive width or height.
	ErrBadDimensions = errors.New("scenario: width and height must be at least 1")
	// ErrMissingEndpoint indicates an absent start or goal.
	ErrMissingEndpoint = errors.New("scenario: start and goal are required")
	// ErrStartOutOfBounds indicates a start outside the arena.
	ErrStartOutOfBounds = errors.New("scenario: start out of bounds")
	// ErrGoalOutOfBounds indicates a goal outside the arena.
	ErrGoalOutOfBounds = errors.New("scenario: goal out of bounds")
	// ErrObstacleOutOfBounds indicates an obstacle outside the arena.
	ErrObstacleOutOfBounds = errors.New("scenario: obstacle out of bounds")
	// ErrStartBlocked indicates the start coincides with an obstacle.
	ErrStartBlocked = errors.New("scenario: start coincides with an obstacle")
	// ErrGoalBlocked indicates the goal coincides with an obstacle.
	ErrGoalBlocked = errors.New("scenario: goal coincides with an obstacle")
	// ErrMapConflict indicates a map block combined with coordinate fields.
	ErrMapConflict = errors.New("scenario: map block excludes width/height/start/goal/obstacles")
	// ErrMapMarker indicates the map block lacks exactly one S and one G.
	ErrMapMarker = errors.New("scenario: map block must contain exactly one S and one G")
	// ErrMapShape indicates ragged map rows or an unknown character.
	ErrMapShape = errors.New("scenario: malformed map block")
)

// Coord is the wire form of a grid.Cell: a two-element [x, y] sequence.
type Coord grid.Cell

// Cell converts the wire coordinate back to the domain type.
func (c Coord) Cell() grid.Cell { return grid.Cell(c) }

// MarshalYAML encodes the coordinate as a flow sequence [x, y].
func (c Coord) MarshalYAML() (interface{}, error) {
	var node yaml.Node
	if err := node.Encode([]int{c.X, c.Y}); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return &node, nil
}

// UnmarshalYAML decodes a two-element integer sequence.
func (c *Coord) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("scenario: coordinate must be [x, y]: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("scenario: coordinate must have exactly 2 elements, got %d", len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// Scenario is one named problem instance. Either the coordinate fields
// or the Map block describe the arena, never both.
type Scenario struct {
	Name      string  `yaml:"name,omitempty"`
	Width     int     `yaml:"width,omitempty"`
	Height    int     `yaml:"height,omitempty"`
	Start     *Coord  `yaml:"start,omitempty"`
	Goal      *Coord  `yaml:"goal,omitempty"`
	Obstacles []Coord `yaml:"obstacles,omitempty"`
	// Map is the ASCII spelling: one row per line, top line at the
	// highest y; '.' free, '#' obstacle, 'S' start, 'G' goal.
	Map string `yaml:"map,omitempty"`
}

// Default returns the canonical built-in instance.
func Default() *Scenario {
	return &Scenario{
		Name:   "canonical",
		Width:  4,
		Height: 4,
		Start:  &Coord{X: 0, Y: 0},
		Goal:   &Coord{X: 3, Y: 3},
		Obstacles: []Coord{
			{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2},
		},
	}
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML, resolves a map block into coordinate form, and
// validates the result.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: decoding YAML: %w", err)
	}
	if err := s.resolveMap(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// resolveMap converts the ASCII block into the coordinate fields. The
// block is consumed: after resolution the scenario carries coordinate
// form only, so Encode round-trips cleanly.
func (s *Scenario) resolveMap() error {
	if s.Map == "" {
		return nil
	}
	if s.Width != 0 || s.Height != 0 || s.Start != nil || s.Goal != nil || len(s.Obstacles) > 0 {
		return ErrMapConflict
	}

	rows := strings.Split(strings.Trim(s.Map, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return fmt.Errorf("%w: empty map", ErrMapShape)
	}
	height := len(rows)
	width := len(rows[0])
	var start, goal *Coord
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMapShape, i, len(row), width)
		}
		y := height - 1 - i // top line carries the highest y
		for x, ch := range row {
			c := Coord{X: x, Y: y}
			switch ch {
			case '.':
			case '#':
				s.Obstacles = append(s.Obstacles, c)
			case 'S':
				if start != nil {
					return fmt.Errorf("%w: second S at %v", ErrMapMarker, c.Cell())
				}
				start = &c
			case 'G':
				if goal != nil {
					return fmt.Errorf("%w: second G at %v", ErrMapMarker, c.Cell())
				}
				goal = &c
			default:
				return fmt.Errorf("%w: unknown character %q at %v", ErrMapShape, ch, c.Cell())
			}
		}
	}
	if start == nil || goal == nil {
		return fmt.Errorf("%w: S present=%t, G present=%t", ErrMapMarker, start != nil, goal != nil)
	}
	s.Width, s.Height = width, height
	s.Start, s.Goal = start, goal
	s.Map = ""
	return nil
}

// Validate fails fast on the first violated precondition, naming the
// offending cell where one exists.
func (s *Scenario) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: got %d×%d", ErrBadDimensions, s.Width, s.Height)
	}
	if s.Start == nil || s.Goal == nil {
		return ErrMissingEndpoint
	}
	inBounds := func(c Coord) bool {
		return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
	}
	if !inBounds(*s.Start) {
		return fmt.Errorf("%w: %v in %d×%d arena", ErrStartOutOfBounds, s.Start.Cell(), s.Width, s.Height)
	}
	if !inBounds(*s.Goal) {
		return fmt.Errorf("%w: %v in %d×%d arena", ErrGoalOutOfBounds, s.Goal.Cell(), s.Width, s.Height)
	}
	for _, o := range s.Obstacles {
		if !inBounds(o) {
			return fmt.Errorf("%w: %v in %d×%d arena", ErrObstacleOutOfBounds, o.Cell(), s.Width, s.Height)
		}
		if o == *s.Start {
			return fmt.Errorf("%w: %v", ErrStartBlocked, o.Cell())
		}
		if o == *s.Goal {
			return fmt.Errorf("%w: %v", ErrGoalBlocked, o.Cell())
		}
	}
	return nil
}

// Field validates the scenario and builds the search arena.
func (s *Scenario) Field(opts grid.Options) (*grid.Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	obstacles := make([]grid.Cell, len(s.Obstacles))
	for i, o := range s.Obstacles {
		obstacles[i] = o.Cell()
	}
	return grid.New(s.Width, s.Height, obstacles, opts)
}

// Encode marshals the scenario back to YAML in coordinate form.
func (s *Scenario) Encode() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scenario: encoding YAML: %w", err)
	}
	return out, nil
}
