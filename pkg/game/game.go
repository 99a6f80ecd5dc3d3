package game

import (
	"io"
	"log"

	"github.com/LayneYy/snake/pkg/config"
)

// Game owns the snake and the current food, and applies input and ticks.
type Game struct {
	cfg    config.Config
	snake  *Snake
	food   Food
	rng    RandSource
	clock  Clock
	logger *log.Logger

	stats      Stats
	gameOver   bool
	crashPoint Block
}

// Option customizes a Game.
type Option func(*Game)

// WithRandSource sets the source used for food placement.
func WithRandSource(rng RandSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithClock sets the clock used for move timestamps.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger that receives spawn and crash events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// NewGame creates a new game instance
func NewGame(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		clock:  SystemClock,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRandSource(cfg.Seed)
	}

	g.snake = NewSnake(cfg, g.clock)
	g.spawnFood()
	return g
}

func (g *Game) spawnFood() {
	g.food = ProduceFood(g.rng, g.cfg)
	col, row := g.food.Cell(g.cfg.BlockSize)
	g.logger.Printf("food spawned at x=%d y=%d", col, row)
}

// HandleDirection applies a direction key press: the snake turns and moves
// immediately. It returns true if food was eaten.
func (g *Game) HandleDirection(d Direction) bool {
	if g.gameOver {
		return false
	}
	g.snake.Steer(d)
	g.stats.Moves++
	if g.checkCollision() {
		return false
	}
	return g.tryEat()
}

// Advance moves the snake forward if MoveInterval elapsed since its last
// move. It returns true if the snake moved.
func (g *Game) Advance() bool {
	if g.gameOver || g.snake.SinceLastMove() < g.cfg.MoveInterval {
		return false
	}
	g.snake.Move()
	g.stats.Moves++
	if !g.checkCollision() {
		g.tryEat()
	}
	return true
}

func (g *Game) tryEat() bool {
	if !g.food.CanBeEaten(g.snake, g.cfg.Tolerance) {
		return false
	}
	g.snake.Eat(g.food.Block)
	g.stats.FoodEaten++
	g.spawnFood()
	// Eat pushes a fresh head, which may itself land on a wall or the body.
	g.checkCollision()
	return true
}

// checkCollision ends the game on a wall or self hit when enabled.
func (g *Game) checkCollision() bool {
	if !g.cfg.CollisionChecks {
		return false
	}
	if g.snake.InBounds(float64(g.cfg.WindowWidth), float64(g.cfg.WindowHeight)) && !g.snake.HitsSelf(g.cfg.Tolerance) {
		return false
	}
	g.gameOver = true
	g.crashPoint = g.snake.Head()
	g.logger.Printf("crashed at x=%v y=%v after %d moves", g.crashPoint.X, g.crashPoint.Y, g.stats.Moves)
	return true
}

func (g *Game) Snake() *Snake { return g.snake }

func (g *Game) Food() Food { return g.food }

func (g *Game) Config() config.Config { return g.cfg }

func (g *Game) Stats() Stats { return g.stats }

func (g *Game) GameOver() bool { return g.gameOver }

// Snapshot returns a copy of the current game state for serialization
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Body:      g.snake.Blocks(),
		Food:      g.food.Block,
		Direction: g.snake.Direction(),
		Length:    g.snake.Len(),
		Moves:     g.stats.Moves,
		FoodEaten: g.stats.FoodEaten,
		GameOver:  g.gameOver,
	}
	if g.gameOver {
		cp := g.crashPoint
		s.CrashPoint = &cp
	}
	return s
}
