package testutils

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// ScriptedRoller is a dice.Roller that returns queued values in order, then
// Fallback. Values are clamped to [1, size].
type ScriptedRoller struct {
	mu       sync.Mutex
	values   []int
	Fallback int
	Sizes    []int
}

// NewScriptedRoller queues values; once exhausted it rolls fallback
func NewScriptedRoller(fallback int, values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values, Fallback: fallback}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sizes = append(r.Sizes, size)

	v := r.Fallback
	if len(r.values) > 0 {
		v = r.values[0]
		r.values = r.values[1:]
	}
	if v > size {
		v = size
	}
	if v < 1 {
		v = 1
	}
	return v, nil
}

// RollN rolls count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// RecordingEventBus is an events.EventBus that keeps every published event
type RecordingEventBus struct {
	mu        sync.Mutex
	Published []events.Event
}

// Publish records the event
func (b *RecordingEventBus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Published = append(b.Published, event)
	return nil
}

// Types returns the published event types in order
func (b *RecordingEventBus) Types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	types := make([]string, len(b.Published))
	for i, e := range b.Published {
		types[i] = e.Type()
	}
	return types
}

// Subscribe is a no-op
func (b *RecordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }

// SubscribeFunc is a no-op
func (b *RecordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}

// Unsubscribe is a no-op
func (b *RecordingEventBus) Unsubscribe(_ string) error { return nil }

// Clear is a no-op
func (b *RecordingEventBus) Clear(_ string) {}

// ClearAll is a no-op
func (b *RecordingEventBus) ClearAll() {}
