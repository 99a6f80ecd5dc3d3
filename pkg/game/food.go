package game

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/LayneYy/snake/pkg/config"
)

// RandSource draws uniform integers in [0, n).
type RandSource interface {
	Intn(n int) int
}

// NewRandSource returns a seeded source. A zero seed uses the current time.
func NewRandSource(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

// Food is the single consumable block on the board.
type Food struct {
	Block
}

// ProduceFood places food on a random cell in [0, cfg.SpawnCells) on both
// axes. It does not avoid the snake body.
func ProduceFood(rng RandSource, cfg config.Config) Food {
	k, j := rng.Intn(cfg.SpawnCells), rng.Intn(cfg.SpawnCells)
	return Food{Block: NewBlock(cfg.BlockSize*float64(k), cfg.BlockSize*float64(j), cfg.BlockSize)}
}

// CanBeEaten reports whether the snake's head sits on the food.
func (f Food) CanBeEaten(s *Snake, tol float64) bool {
	return f.Near(s.Head(), tol)
}
