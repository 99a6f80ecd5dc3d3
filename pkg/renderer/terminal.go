package renderer

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/LayneYy/snake/pkg/config"
	"github.com/LayneYy/snake/pkg/game"
)

// TerminalRenderer draws snapshots as a grid of emoji cells, one per block,
// painted with the configured colors.
type TerminalRenderer struct {
	out       io.Writer
	blockSize float64
	board     [][]int
	glyphs    [cellCount]string
	buffer    strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellCrash
	cellCount
)

// paint puts s on a 24-bit background of c. A fully transparent color
// leaves s unpainted.
func paint(c config.Color, s string) string {
	if c[3] == 0 {
		return s
	}
	ch := func(v float32) int {
		return int(math.Round(float64(v) * 255))
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", ch(c[0]), ch(c[1]), ch(c[2]), s)
}

// NewTerminalRenderer creates a renderer for cfg's window writing to out.
// A nil out writes to stdout.
func NewTerminalRenderer(cfg config.Config, out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, cfg.Rows())
	for i := range board {
		board[i] = make([]int, cfg.Columns())
	}

	r := &TerminalRenderer{
		out:       out,
		blockSize: cfg.BlockSize,
		board:     board,
	}
	r.glyphs[cellEmpty] = paint(cfg.BackgroundColor, config.CharEmpty)
	r.glyphs[cellHead] = paint(cfg.SnakeColor, config.CharHead)
	r.glyphs[cellBody] = paint(cfg.SnakeColor, config.CharBody)
	r.glyphs[cellFood] = paint(cfg.FoodColor, config.CharFood)
	r.glyphs[cellCrash] = config.CharCrash
	return r
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	r.buffer.WriteString("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// place marks the cell under b. Blocks outside the window are not drawn.
func (r *TerminalRenderer) place(b game.Block, cell int) {
	col, row := b.Cell(r.blockSize)
	if row < 0 || row >= len(r.board) || col < 0 || col >= len(r.board[row]) {
		return
	}
	r.board[row][col] = cell
}

// Render renders the snapshot to the terminal
func (r *TerminalRenderer) Render(s game.Snapshot) error {
	r.buffer.Reset()
	r.clearScreen()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	r.place(s.Food, cellFood)
	// Tail first so the head wins when segments overlap.
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			r.place(s.Body[i], cellHead)
		} else {
			r.place(s.Body[i], cellBody)
		}
	}
	if s.CrashPoint != nil {
		r.place(*s.CrashPoint, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Length: %d  |  Eaten: %d  |  Moves: %d  |  Heading: %s\n\n",
		s.Length, s.FoodEaten, s.Moves, s.Direction))

	width := 0
	if len(r.board) > 0 {
		width = len(r.board[0])
	}
	wall := "  " + strings.Repeat(config.CharWall, width+2) + "\n"
	r.buffer.WriteString(wall)
	for _, row := range r.board {
		r.buffer.WriteString("  " + config.CharWall)
		for _, cell := range row {
			r.buffer.WriteString(r.glyphs[cell])
		}
		r.buffer.WriteString(config.CharWall + "\n")
	}
	r.buffer.WriteString(wall)

	r.buffer.WriteString("\n  Arrow keys to move, Esc to quit\n")
	if s.GameOver {
		r.buffer.WriteString("\n  💀 GAME OVER! Press Esc to quit\n")
	}

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}
