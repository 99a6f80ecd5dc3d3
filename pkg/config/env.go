package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// FromEnv starts from Default, loads an optional .env file and applies any
// SNAKE_* overrides found in the environment.
func FromEnv(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	c := Default()
	var err error
	setFloat := func(key string, dst *float64) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok {
			var f float64
			if f, err = strconv.ParseFloat(v, 64); err != nil {
				err = fmt.Errorf("%s: %w", key, err)
				return
			}
			*dst = f
		}
	}
	setInt := func(key string, dst *int) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok {
			var n int
			if n, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("%s: %w", key, err)
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok {
			var d time.Duration
			if d, err = time.ParseDuration(v); err != nil {
				err = fmt.Errorf("%s: %w", key, err)
				return
			}
			*dst = d
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setFloat("SNAKE_BLOCK_SIZE", &c.BlockSize)
	setInt("SNAKE_WINDOW_WIDTH", &c.WindowWidth)
	setInt("SNAKE_WINDOW_HEIGHT", &c.WindowHeight)
	setInt("SNAKE_SPAWN_CELLS", &c.SpawnCells)
	setFloat("SNAKE_TOLERANCE", &c.Tolerance)
	setDuration("SNAKE_MOVE_INTERVAL", &c.MoveInterval)
	setDuration("SNAKE_TICK", &c.TickResolution)
	setString("SNAKE_RECORD_DIR", &c.RecordDir)
	setString("SNAKE_DB_PATH", &c.DBPath)
	setString("SNAKE_SPECTATE_ADDR", &c.SpectateAddr)
	setString("SNAKE_LOG_FILE", &c.LogFile)
	if err != nil {
		return Config{}, err
	}

	if v, ok := os.LookupEnv("SNAKE_COLLISIONS"); ok {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return Config{}, fmt.Errorf("SNAKE_COLLISIONS: %w", perr)
		}
		c.CollisionChecks = b
	}
	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		s, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("SNAKE_SEED: %w", perr)
		}
		c.Seed = s
	}

	return c, c.Validate()
}
