package game

import (
	"context"
	"time"
)

// CommandKind identifies what a Command asks the loop to do.
type CommandKind int

const (
	CommandDirection CommandKind = iota
	CommandQuit
)

// Command is one input action fed to Run.
type Command struct {
	Kind      CommandKind
	Direction Direction
}

// DirectionCommand wraps a direction key press.
func DirectionCommand(d Direction) Command {
	return Command{Kind: CommandDirection, Direction: d}
}

// QuitCommand ends the loop.
func QuitCommand() Command {
	return Command{Kind: CommandQuit}
}

// Run drives g until a quit command, a closed command channel, or ctx is
// done. Input and ticks are independent: a direction command moves the snake
// at once, and each tick moves it only if MoveInterval has elapsed since the
// last move. observe, if non-nil, sees every state change.
func Run(ctx context.Context, g *Game, cmds <-chan Command, ticks <-chan time.Time, observe func(Snapshot)) error {
	notify := func() {
		if observe != nil {
			observe(g.Snapshot())
		}
	}
	notify()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-cmds:
			if !ok || cmd.Kind == CommandQuit {
				return nil
			}
			if cmd.Kind == CommandDirection && !g.GameOver() {
				g.HandleDirection(cmd.Direction)
				notify()
			}

		case <-ticks:
			if g.Advance() {
				notify()
			}
		}
	}
}

// RunWithTicker is Run with a time.Ticker at the configured resolution.
func RunWithTicker(ctx context.Context, g *Game, cmds <-chan Command, observe func(Snapshot)) error {
	ticker := time.NewTicker(g.Config().TickResolution)
	defer ticker.Stop()
	return Run(ctx, g, cmds, ticker.C, observe)
}
