package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndTopSessions(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "a", StartTime: start, EndTime: start.Add(time.Minute), Length: 5, FoodEaten: 2, Moves: 40},
		{ID: "b", StartTime: start, EndTime: start.Add(2 * time.Minute), Length: 9, FoodEaten: 6, Moves: 90, Crashed: true},
		{ID: "c", StartTime: start, EndTime: start.Add(3 * time.Minute), Length: 5, FoodEaten: 3, Moves: 55},
	}
	for _, sess := range sessions {
		if err := s.SaveSession(ctx, sess); err != nil {
			t.Fatalf("SaveSession(%s): %v", sess.ID, err)
		}
	}

	top, err := s.TopSessions(ctx, 2)
	if err != nil {
		t.Fatalf("TopSessions: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(top))
	}
	if top[0].ID != "b" || top[1].ID != "c" {
		t.Errorf("unexpected order: %s, %s", top[0].ID, top[1].ID)
	}
	if !top[0].Crashed || top[0].Moves != 90 {
		t.Errorf("fields not round-tripped: %+v", top[0])
	}
	if !top[0].EndTime.Equal(start.Add(2 * time.Minute)) {
		t.Errorf("unexpected end time %v", top[0].EndTime)
	}
}

func TestSaveSessionReplaces(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nested", "snake.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	now := time.Now()
	if err := s.SaveSession(ctx, Session{ID: "x", StartTime: now, EndTime: now, Length: 3}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSession(ctx, Session{ID: "x", StartTime: now, EndTime: now, Length: 7}); err != nil {
		t.Fatal(err)
	}

	top, err := s.TopSessions(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Length != 7 {
		t.Errorf("expected one session of length 7, got %+v", top)
	}
}
