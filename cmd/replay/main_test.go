package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestListRecords(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, mod time.Time) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	now := time.Now()
	write("game_old-id_100.jsonl", now.Add(-time.Hour))
	write("game_new-id_200.jsonl", now)
	write("notes.txt", now)

	records, err := listRecords(dir)
	if err != nil {
		t.Fatalf("listRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 recordings, got %d", len(records))
	}
	if records[0].SessionID != "new-id" || records[1].SessionID != "old-id" {
		t.Errorf("unexpected order or ids: %+v", records)
	}
}

func TestListRecordsMissingDir(t *testing.T) {
	records, err := listRecords(filepath.Join(t.TempDir(), "nope"))
	if err != nil || records != nil {
		t.Errorf("missing dir should yield nothing, got %v %v", records, err)
	}
}
