package input

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Source delivers at most one recognized command per Poll
type Source struct {
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// NewSource starts pumping screen events into a buffered channel
// The pump stops on Close or when the screen is finalized
func NewSource(screen tcell.Screen) *Source {
	s := &Source{
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s
}

// Poll waits up to timeout for a steering or quit command
// Unrecognized events are dropped and the wait continues; a zero or negative
// timeout only drains what is already queued. A cancelled ctx reads as quit
func (s *Source) Poll(ctx context.Context, timeout time.Duration) Command {
	if timeout <= 0 {
		for {
			select {
			case ev, ok := <-s.events:
				if !ok {
					return Command{Action: ActionQuit}
				}
				if cmd := Translate(ev); cmd.Action != ActionNone {
					return cmd
				}
			default:
				return Command{}
			}
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return Command{Action: ActionQuit}
		case <-timer.C:
			return Command{}
		case ev, ok := <-s.events:
			if !ok {
				return Command{Action: ActionQuit}
			}
			if cmd := Translate(ev); cmd.Action != ActionNone {
				return cmd
			}
		}
	}
}

// Close stops the event pump; safe to call more than once
func (s *Source) Close() {
	s.once.Do(func() { close(s.quit) })
}
