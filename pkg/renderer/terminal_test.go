package renderer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/LayneYy/snake/pkg/config"
	"github.com/LayneYy/snake/pkg/game"
)

func TestRenderDrawsSnakeAndFood(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer
	r := NewTerminalRenderer(cfg, &out)

	snap := game.Snapshot{
		Body:   []game.Block{game.NewBlock(100, 0, 50), game.NewBlock(50, 0, 50), game.NewBlock(0, 0, 50)},
		Food:   game.NewBlock(300, 300, 50),
		Length: 3,
	}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "  "+config.CharWall) {
			rows = append(rows, l)
		}
	}
	// Top wall, 14 rows, bottom wall.
	if len(rows) != cfg.Rows()+2 {
		t.Fatalf("expected %d board lines, got %d", cfg.Rows()+2, len(rows))
	}
	first := rows[1]
	wantFirst := "  " + config.CharWall + r.glyphs[cellBody] + r.glyphs[cellBody] + r.glyphs[cellHead]
	if !strings.HasPrefix(first, wantFirst) {
		t.Errorf("first row should start with body, body, head: %q", first)
	}
	if !strings.Contains(rows[1+6], r.glyphs[cellFood]) {
		t.Errorf("food should be drawn on row 6: %q", rows[7])
	}
	if strings.Contains(out.String(), "GAME OVER") {
		t.Error("game over banner shown for a running game")
	}
}

func TestRenderSkipsOffscreenBlocks(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(config.Default(), &out)
	crash := game.NewBlock(100, -50, 50)
	snap := game.Snapshot{
		Body:       []game.Block{crash, game.NewBlock(100, 0, 50)},
		GameOver:   true,
		CrashPoint: &crash,
	}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.String(), config.CharCrash) {
		t.Error("offscreen crash point should not be drawn")
	}
	if !strings.Contains(out.String(), "GAME OVER") {
		t.Error("missing game over banner")
	}
}

func TestRenderUsesConfiguredColors(t *testing.T) {
	cfg := config.Default()
	cfg.SnakeColor = config.Color{1, 0, 0, 1}
	cfg.BackgroundColor = config.Color{0, 0, 0, 0}
	var out bytes.Buffer
	r := NewTerminalRenderer(cfg, &out)

	if err := r.Render(game.Snapshot{Body: []game.Block{game.NewBlock(0, 0, 50)}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "\033[48;2;255;0;0m"+config.CharHead) {
		t.Error("head should be painted with the snake color")
	}
	if r.glyphs[cellEmpty] != config.CharEmpty {
		t.Errorf("transparent background should leave cells unpainted, got %q", r.glyphs[cellEmpty])
	}

	def := NewTerminalRenderer(config.Default(), &out)
	if want := "\033[48;2;128;255;128m" + config.CharEmpty + "\033[0m"; def.glyphs[cellEmpty] != want {
		t.Errorf("default background: expected %q, got %q", want, def.glyphs[cellEmpty])
	}
}

// BenchmarkRender measures one buffered frame.
func BenchmarkRender(b *testing.B) {
	cfg := config.Default()
	g := game.NewGame(cfg)
	r := NewTerminalRenderer(cfg, io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(g.Snapshot())
	}
}
