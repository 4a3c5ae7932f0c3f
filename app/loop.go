package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/energy-calculator/constants"
)

// Run drives the frame loop until quit is requested, ctx is cancelled or the
// screen stops delivering events. The caller owns Init and Fini of screen.
func Run(ctx context.Context, screen tcell.Screen, s *State) error {
	return RunWithInterval(ctx, screen, s, constants.FrameInterval)
}

// RunWithInterval is Run with an explicit frame interval
func RunWithInterval(ctx context.Context, screen tcell.Screen, s *State, interval time.Duration) error {
	events := make(chan tcell.Event, constants.EventBufferSize)
	done := make(chan struct{})
	defer close(done)

	// Input polling stays on its own goroutine; PollEvent returns nil after Fini
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Draw(screen)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			if !s.HandleEvent(ev) {
				return nil
			}
			s.Draw(screen)

		case <-ticker.C:
			s.Draw(screen)
		}
	}
}
