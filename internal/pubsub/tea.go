package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenCmd adapts one receive from an event channel into a tea.Cmd, so
// broker events surface as messages in a Bubble Tea update loop. The
// command yields nil once ctx is cancelled or the channel closes, which
// ends the listen loop.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// ContinuousListener holds a broker subscription across update cycles.
// The host returns Listen from Init, handles the Event message in
// Update, and returns Listen again to re-arm.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to broker for the lifetime of ctx.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen returns a command that waits for the next event.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return ListenCmd(l.ctx, l.ch)
}
