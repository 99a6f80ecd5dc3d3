package game

import (
	"time"

	"github.com/LayneYy/snake/pkg/config"
)

// Snake is an ordered body of blocks plus a heading.
type Snake struct {
	body      *body
	direction Direction
	blockSize float64
	clock     Clock
	lastMove  time.Time
}

// NewSnake lays out cfg.StartLength blocks along the top row, heading right.
// Blocks are pushed to the front in order, so the rightmost one is the head.
func NewSnake(cfg config.Config, clock Clock) *Snake {
	if clock == nil {
		clock = SystemClock
	}
	s := &Snake{
		body:      newBody(cfg.StartLength * 2),
		direction: Right,
		blockSize: cfg.BlockSize,
		clock:     clock,
		lastMove:  clock.Now(),
	}
	for i := 0; i < cfg.StartLength; i++ {
		s.body.pushFront(NewBlock(float64(i)*cfg.BlockSize, 0, cfg.BlockSize))
	}
	return s
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction { return s.direction }

// ChangeDirection sets the heading. Reversing into the body is allowed.
func (s *Snake) ChangeDirection(d Direction) {
	s.direction = d
}

// Move advances one block by recycling the tail as the new head.
func (s *Snake) Move() {
	head := s.body.front()
	tail := s.body.popBack()
	next := head.Offset(s.direction, s.blockSize)
	tail.X, tail.Y = next.X, next.Y
	s.body.pushFront(tail)
	s.lastMove = s.clock.Now()
}

// Steer changes the heading and moves in one step.
func (s *Snake) Steer(d Direction) {
	s.ChangeDirection(d)
	s.Move()
}

// Eat places food one block ahead of the head and makes it the new head.
// Nothing is removed from the tail, so the body grows by one.
func (s *Snake) Eat(food Block) {
	next := s.body.front().Offset(s.direction, s.blockSize)
	food.X, food.Y = next.X, next.Y
	s.body.pushFront(food)
}

// SinceLastMove returns the time elapsed since the last Move.
func (s *Snake) SinceLastMove() time.Duration {
	return s.clock.Now().Sub(s.lastMove)
}

// PassSecs reports whether at least n whole seconds passed since the last move.
func (s *Snake) PassSecs(n int) bool {
	return int64(s.SinceLastMove()/time.Second) >= int64(n)
}

func (s *Snake) Head() Block { return s.body.front() }

func (s *Snake) Tail() Block { return s.body.back() }

func (s *Snake) Len() int { return s.body.len() }

// Blocks returns a copy of the body, head first.
func (s *Snake) Blocks() []Block { return s.body.slice() }

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf(tol float64) bool {
	head := s.body.front()
	for i := 1; i < s.body.len(); i++ {
		if head.Near(s.body.at(i), tol) {
			return true
		}
	}
	return false
}

// InBounds reports whether the head lies fully inside a w x h window.
func (s *Snake) InBounds(w, h float64) bool {
	head := s.body.front()
	return head.X >= 0 && head.Y >= 0 && head.X+head.W <= w && head.Y+head.H <= h
}
