package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/LayneYy/snake/pkg/config"
	"github.com/LayneYy/snake/pkg/game"
	"github.com/LayneYy/snake/pkg/renderer"
)

// RecordFile describes one recording on disk
type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

func main() {
	recordDir := flag.String("dir", config.DefaultRecordDir, "directory holding recordings")
	speed := flag.Float64("speed", 1, "playback speed multiplier")
	flag.Parse()

	if flag.NArg() == 0 {
		records, err := listRecords(*recordDir)
		if err != nil {
			log.Fatal(err)
		}
		if len(records) == 0 {
			fmt.Printf("No recordings in %s\n", *recordDir)
			return
		}
		fmt.Println("📼 Recordings (newest first):")
		for _, r := range records {
			fmt.Printf("  %s  %s  %6d bytes  session %s\n", r.Time.Format("2006-01-02 15:04:05"), r.Name, r.Size, r.SessionID)
		}
		fmt.Println("\nUsage: replay [-speed N] <file>")
		return
	}

	if *speed <= 0 {
		log.Fatal("speed must be positive")
	}

	path := flag.Arg(0)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(*recordDir, flag.Arg(0))
	}
	steps, err := game.ReadRecording(path)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	render := renderer.NewTerminalRenderer(cfg, os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	for i, step := range steps {
		if i > 0 {
			wait := step.Time.Sub(steps[i-1].Time)
			time.Sleep(time.Duration(float64(wait) / *speed))
		}
		if err := render.Render(step.State); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  ▶ step %d/%d (%s)\n", i+1, len(steps), step.Event)
	}
}

// listRecords returns recordings in dir, newest first.
// Expected name format: game_{sessionID}_{timestamp}.jsonl
func listRecords(dir string) ([]RecordFile, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var records []RecordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		sessID := ""
		if parts := strings.Split(strings.TrimSuffix(f.Name(), ".jsonl"), "_"); len(parts) >= 3 {
			sessID = strings.Join(parts[1:len(parts)-1], "_")
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}
