package game

import (
	"fmt"
	"math"
)

// Block is an axis-aligned square occupying one grid cell. Both snake
// segments and food are blocks.
type Block struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewBlock creates a size x size block with its top-left corner at (x, y).
func NewBlock(x, y, size float64) Block {
	return Block{X: x, Y: y, W: size, H: size}
}

// Offset returns a copy of b moved one step of the given size in d.
func (b Block) Offset(d Direction, size float64) Block {
	dx, dy := d.Delta()
	b.X += float64(dx) * size
	b.Y += float64(dy) * size
	return b
}

// Near reports whether b and o share a position within tol. A zero
// tolerance demands exact equality.
func (b Block) Near(o Block, tol float64) bool {
	if tol == 0 {
		return b.X == o.X && b.Y == o.Y
	}
	return math.Abs(b.X-o.X) < tol && math.Abs(b.Y-o.Y) < tol
}

// Cell returns the grid column and row of b for the given block size.
func (b Block) Cell(size float64) (col, row int) {
	return int(math.Floor(b.X/size + 0.5)), int(math.Floor(b.Y/size + 0.5))
}

// Direction is one of the four headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Delta returns the unit grid step for d. Screen coordinates grow downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return 0, false
}

// MarshalText encodes d by name so recordings stay readable.
func (d Direction) MarshalText() ([]byte, error) {
	if d < Up || d > Right {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	v, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = v
	return nil
}

// Stats tracks counters for one session.
type Stats struct {
	Moves     int `json:"moves"`
	FoodEaten int `json:"foodEaten"`
}

// Snapshot is a copy of the game state for rendering and serialization
type Snapshot struct {
	Body       []Block   `json:"body"` // Head first
	Food       Block     `json:"food"`
	Direction  Direction `json:"direction"`
	Length     int       `json:"length"`
	Moves      int       `json:"moves"`
	FoodEaten  int       `json:"foodEaten"`
	GameOver   bool      `json:"gameOver"`
	CrashPoint *Block    `json:"crashPoint,omitempty"`
}

// Head returns the first body block, or the zero Block for an empty body.
func (s Snapshot) Head() Block {
	if len(s.Body) == 0 {
		return Block{}
	}
	return s.Body[0]
}
