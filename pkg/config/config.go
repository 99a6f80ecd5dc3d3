package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Board geometry defaults
const (
	DefaultBlockSize    = 50.0
	DefaultWindowWidth  = 700
	DefaultWindowHeight = 700
	DefaultSpawnCells   = 13 // Food spawn bound; 14 would tile 700px exactly
	DefaultStartLength  = 3
)

// Movement defaults
const (
	DefaultTolerance      = 0.0001
	DefaultMoveInterval   = 1 * time.Second
	DefaultTickResolution = 16 * time.Millisecond // Polling ticker (~60 FPS)
)

// Runtime paths
const (
	DefaultRecordDir = "records"
	DefaultDBPath    = "data/snake.db"
	DefaultLogFile   = "snake.log"
)

// Emoji characters for rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟣"
	CharBody  = "🟪"
	CharFood  = "🔴"
	CharCrash = "💥"
)

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

var (
	SnakeColor      = Color{0.73, 0.23, 0.60, 1.0}
	FoodColor       = Color{0.73, 0.23, 0.60, 1.0}
	BackgroundColor = Color{0.5, 1.0, 0.5, 1.0}
)

// Config holds every tunable of a game session. It is passed by value to
// constructors and never mutated after a game starts.
type Config struct {
	BlockSize    float64
	WindowWidth  int
	WindowHeight int

	// SpawnCells bounds food placement to [0, SpawnCells) in both axes.
	SpawnCells int
	// Tolerance for head/food coincidence. Zero means exact equality.
	Tolerance   float64
	StartLength int

	MoveInterval   time.Duration
	TickResolution time.Duration

	// CollisionChecks ends the game on wall or self collision. Off by
	// default, which keeps the classic behavior of no collisions at all.
	CollisionChecks bool

	// Seed for food placement. Zero seeds from the current time.
	Seed int64

	SnakeColor      Color
	FoodColor       Color
	BackgroundColor Color

	RecordDir    string // Empty disables step recording
	DBPath       string // Empty disables session history
	SpectateAddr string // Empty disables the spectator server
	LogFile      string
}

// Default returns the classic 700x700 board with 50px blocks.
func Default() Config {
	return Config{
		BlockSize:       DefaultBlockSize,
		WindowWidth:     DefaultWindowWidth,
		WindowHeight:    DefaultWindowHeight,
		SpawnCells:      DefaultSpawnCells,
		Tolerance:       DefaultTolerance,
		StartLength:     DefaultStartLength,
		MoveInterval:    DefaultMoveInterval,
		TickResolution:  DefaultTickResolution,
		SnakeColor:      SnakeColor,
		FoodColor:       FoodColor,
		BackgroundColor: BackgroundColor,
		RecordDir:       DefaultRecordDir,
		DBPath:          DefaultDBPath,
		LogFile:         DefaultLogFile,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %v must be positive", ErrInvalidConfig, c.BlockSize)
	case float64(c.WindowWidth) < c.BlockSize || float64(c.WindowHeight) < c.BlockSize:
		return fmt.Errorf("%w: window %dx%d smaller than one block", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.SpawnCells < 1:
		return fmt.Errorf("%w: spawn cells %d must be at least 1", ErrInvalidConfig, c.SpawnCells)
	case float64(c.SpawnCells)*c.BlockSize > float64(c.WindowWidth) || float64(c.SpawnCells)*c.BlockSize > float64(c.WindowHeight):
		return fmt.Errorf("%w: %d spawn cells of %v do not fit a %dx%d window", ErrInvalidConfig, c.SpawnCells, c.BlockSize, c.WindowWidth, c.WindowHeight)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %v must not be negative", ErrInvalidConfig, c.Tolerance)
	case c.StartLength < 1:
		return fmt.Errorf("%w: start length %d must be at least 1", ErrInvalidConfig, c.StartLength)
	case c.MoveInterval <= 0:
		return fmt.Errorf("%w: move interval %v must be positive", ErrInvalidConfig, c.MoveInterval)
	case c.TickResolution <= 0:
		return fmt.Errorf("%w: tick resolution %v must be positive", ErrInvalidConfig, c.TickResolution)
	}
	return nil
}

// Columns returns how many whole blocks fit horizontally.
func (c Config) Columns() int {
	return int(float64(c.WindowWidth) / c.BlockSize)
}

// Rows returns how many whole blocks fit vertically.
func (c Config) Rows() int {
	return int(float64(c.WindowHeight) / c.BlockSize)
}
