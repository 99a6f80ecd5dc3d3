package input

import (
	"context"

	"github.com/eiannone/keyboard"

	"github.com/LayneYy/snake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
	done      chan struct{}
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
		done:      make(chan struct{}),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		defer close(h.inputChan)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			select {
			case h.inputChan <- KeyInput{Char: char, Key: key}:
			case <-h.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	close(h.done)
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// Commands translates raw key events into game commands. Keys that map to
// neither a direction nor quit are dropped. The returned channel closes
// when the input channel does, after a quit, or once ctx is done.
func Commands(ctx context.Context, in <-chan KeyInput) <-chan game.Command {
	out := make(chan game.Command)
	go func() {
		defer close(out)
		send := func(c game.Command) bool {
			select {
			case out <- c:
				return true
			case <-ctx.Done():
				return false
			}
		}
		for {
			var ev KeyInput
			var ok bool
			select {
			case ev, ok = <-in:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
			if IsQuit(ev) {
				send(game.QuitCommand())
				return
			}
			if d, ok := ParseDirection(ev); ok {
				if !send(game.DirectionCommand(d)) {
					return
				}
			}
		}
	}()
	return out
}

// ParseDirection maps the arrow keys to a direction. Any other key reports
// false and leaves the heading alone.
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}
	return 0, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}
