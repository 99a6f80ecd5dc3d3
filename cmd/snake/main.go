package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/LayneYy/snake/pkg/config"
	"github.com/LayneYy/snake/pkg/game"
	"github.com/LayneYy/snake/pkg/input"
	"github.com/LayneYy/snake/pkg/renderer"
	"github.com/LayneYy/snake/pkg/spectate"
	"github.com/LayneYy/snake/pkg/store"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// The terminal belongs to the renderer, so logs go to a file.
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal("Error opening log file: ", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "snake ", log.LstdFlags)

	sessionID := uuid.NewString()
	logger.Printf("session %s starting", sessionID)

	var history *store.Store
	if cfg.DBPath != "" {
		if history, err = store.Open(cfg.DBPath); err != nil {
			log.Fatal("Error opening session history: ", err)
		}
		defer history.Close()
	}

	var recorder *game.Recorder
	if cfg.RecordDir != "" {
		if recorder, err = game.NewRecorder(cfg.RecordDir, sessionID); err != nil {
			log.Fatal("Error creating recorder: ", err)
		}
	}

	var hub *spectate.Hub
	if cfg.SpectateAddr != "" {
		hub = spectate.NewHub(logger)
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: cfg.SpectateAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Printf("spectate server: %v", err)
			}
		}()
		defer func() {
			hub.Close()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(cfg, os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.NewGame(cfg, game.WithLogger(logger))
	start := time.Now()
	seq := 0
	event := "start"

	observe := func(s game.Snapshot) {
		if err := render.Render(s); err != nil {
			logger.Printf("render: %v", err)
		}
		if hub != nil {
			hub.Broadcast(s)
		}
		if recorder != nil {
			if s.GameOver {
				event = "end"
			}
			recorder.RecordStep(game.StepRecord{Seq: seq, Time: time.Now(), Event: event, State: s})
			seq++
		}
		event = "move"
	}

	cmds := input.Commands(ctx, inputHandler.GetInputChan())

	if err := game.RunWithTicker(ctx, g, cmds, observe); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("game loop: %v", err)
	}

	if recorder != nil {
		if err := recorder.Close(); err != nil {
			logger.Printf("recorder: %v", err)
		}
		if n := recorder.Dropped(); n > 0 {
			logger.Printf("recorder dropped %d steps", n)
		}
	}

	stats := g.Stats()
	fmt.Printf("\n  Length %d, ate %d, %d moves. Thanks for playing! 👋\n", g.Snake().Len(), stats.FoodEaten, stats.Moves)

	if history != nil {
		saveCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		sess := store.Session{
			ID:        sessionID,
			StartTime: start,
			EndTime:   time.Now(),
			Length:    g.Snake().Len(),
			FoodEaten: stats.FoodEaten,
			Moves:     stats.Moves,
			Crashed:   g.GameOver(),
		}
		if err := history.SaveSession(saveCtx, sess); err != nil {
			logger.Printf("history: %v", err)
			return
		}
		top, err := history.TopSessions(saveCtx, 5)
		if err != nil {
			logger.Printf("history: %v", err)
			return
		}
		fmt.Println("  Best sessions:")
		for i, s := range top {
			marker := ""
			if s.ID == sessionID {
				marker = "  <- this game"
			}
			fmt.Printf("  %d. length %d, ate %d (%s)%s\n", i+1, s.Length, s.FoodEaten, s.EndTime.Local().Format("2006-01-02 15:04"), marker)
		}
	}
}
