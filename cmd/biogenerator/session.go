// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/pdiddy/biogenerator/internal/extractor"
	"github.com/pdiddy/biogenerator/internal/feedback"
	"github.com/pdiddy/biogenerator/internal/ledger"
	"github.com/pdiddy/biogenerator/internal/world"
	"github.com/pdiddy/biogenerator/pkg/types"
)

// session wires a loaded world, the ledger and the extractor system for
// one CLI invocation.
type session struct {
	world      *world.World
	store      *ledger.Store
	sink       *feedback.Sink
	system     *extractor.System
	dispatcher *extractor.Dispatcher
}

func openSession(cfg types.AppConfig) (*session, error) {
	w, err := world.Load(cfg.Scenario.Path)
	if err != nil {
		return nil, err
	}
	store, err := ledger.NewStore(cfg.Ledger)
	if err != nil {
		return nil, err
	}
	sink := feedback.NewSink(cfg.Locale.Language, logger)

	sys := extractor.New(extractor.Deps{
		Power:    w,
		Items:    w,
		Storage:  store,
		Destroy:  w,
		Feedback: sink,
	}, extractor.WithLogger(logger))

	d := extractor.NewDispatcher()
	sys.Register(d)

	return &session{world: w, store: store, sink: sink, system: sys, dispatcher: d}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// fire dispatches t, applies deferred destruction and persists the world
// unless dryRun is set.
func (s *session) fire(ctx context.Context, t types.Trigger, cfg types.ScenarioConfig) (types.TriggerResult, error) {
	res := s.dispatcher.Dispatch(ctx, t)
	if res.PlaySound {
		if ec, ok := s.world.Extractor(t.Extractor); ok && ec.ExtractSound != "" {
			s.sink.PlaySound(ec.ExtractSound, t.Extractor)
		}
	}

	removed := s.world.Flush()
	if cfg.DryRun || len(removed) == 0 {
		return res, nil
	}
	logger.Debugw("persisting scenario", "path", cfg.Path, "removed", removed)
	return res, s.world.Save(cfg.Path)
}
