// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"context"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// Handler reacts to a trigger. It receives the result accumulated by the
// handlers before it and returns the updated result.
type Handler func(ctx context.Context, t types.Trigger, prior types.TriggerResult) types.TriggerResult

// Dispatcher routes triggers to handlers registered per trigger kind.
// Handlers for a kind run in registration order.
type Dispatcher struct {
	handlers map[types.TriggerKind][]Handler
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[types.TriggerKind][]Handler)}
}

// Register appends h to the chain for kind.
func (d *Dispatcher) Register(kind types.TriggerKind, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Dispatch runs every handler registered for t.Kind and returns the final
// result. A trigger with no handlers is left unhandled.
func (d *Dispatcher) Dispatch(ctx context.Context, t types.Trigger) types.TriggerResult {
	var res types.TriggerResult
	for _, h := range d.handlers[t.Kind] {
		res = h(ctx, t, res)
	}
	return res
}

// Register installs the interaction and dump handlers on d.
func (s *System) Register(d *Dispatcher) {
	d.Register(types.TriggerInteract, func(ctx context.Context, t types.Trigger, prior types.TriggerResult) types.TriggerResult {
		if prior.Handled {
			return prior
		}
		return merge(prior, s.Interact(ctx, t.Extractor, t.Actor, t.Used))
	})
	d.Register(types.TriggerDump, func(ctx context.Context, t types.Trigger, prior types.TriggerResult) types.TriggerResult {
		return s.Dump(ctx, prior, t.Extractor, t.Actor, t.Queue)
	})
}

// merge adds the credits of res to those accumulated in prior.
func merge(prior, res types.TriggerResult) types.TriggerResult {
	out := prior
	out.Handled = prior.Handled || res.Handled
	out.PlaySound = prior.PlaySound || res.PlaySound
	out.Credited += res.Credited
	out.Consumed = append(append([]types.EntityID(nil), prior.Consumed...), res.Consumed...)
	return out
}
