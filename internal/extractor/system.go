// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extractor converts produce into stored material. It evaluates
// an item's chemical solution against an extractor's accepted reagents,
// credits the resulting material to the extractor's storage and destroys
// the consumed item. Two entry points exist: a direct interaction with a
// single item (unwrapping containers) and a bulk dump of a flat queue.
package extractor

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// Localization keys used for user-facing feedback.
const (
	MsgWrongReagent = "material-extractor-comp-wrongreagent"
	MsgDumpVerb     = "dump-biogenerator-verb-name"
)

// PowerSource reports whether a device currently has power.
type PowerSource interface {
	IsPowered(id types.EntityID) bool
}

// Items resolves the components of world entities.
type Items interface {
	// Extractor returns the extractor configuration of a device.
	Extractor(id types.EntityID) (types.ExtractorConfig, bool)

	// Solution returns the produce solution of an item. ok is false when
	// the item is not produce or carries no solution.
	Solution(id types.EntityID) (types.Solution, bool)

	// StoredItems returns the contents of a container in storage order.
	// ok is false when the item is not a container.
	StoredItems(id types.EntityID) ([]types.StoredItem, bool)
}

// MaterialStorage accumulates extracted material per storage entity.
type MaterialStorage interface {
	CreditMaterial(ctx context.Context, storage types.EntityID, material types.MaterialID, amount int) error
}

// Destroyer removes consumed items. Removal may be deferred.
type Destroyer interface {
	QueueDestroy(id types.EntityID)
}

// Feedback delivers popups and sounds to players.
type Feedback interface {
	ShowMessage(key string, recipient types.EntityID, args map[string]any)
	PlaySound(sound types.SoundRef, at types.EntityID)
}

// Deps bundles the collaborators a System needs.
type Deps struct {
	Power    PowerSource
	Items    Items
	Storage  MaterialStorage
	Destroy  Destroyer
	Feedback Feedback
}

// System handles extraction triggers for produce extractors.
type System struct {
	deps   Deps
	logger *zap.SugaredLogger
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used for extraction diagnostics.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *System) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a System wired to deps.
func New(deps Deps, opts ...Option) *System {
	s := &System{
		deps:   deps,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pass tracks the state of one trigger while it is being handled.
type pass struct {
	extractor types.EntityID
	actor     types.EntityID
	cfg       types.ExtractorConfig
	result    types.TriggerResult

	// consumed holds items already credited in this pass; they are never
	// extracted twice.
	consumed map[types.EntityID]bool

	// seen, when non-nil, makes every item eligible once per pass,
	// failures included. Only interactions set it.
	seen map[types.EntityID]bool
}

func (s *System) begin(extractor, actor types.EntityID) (*pass, bool) {
	if !s.deps.Power.IsPowered(extractor) {
		s.logger.Debugw("extractor unpowered", "extractor", extractor)
		return nil, false
	}
	cfg, ok := s.deps.Items.Extractor(extractor)
	if !ok {
		s.logger.Debugw("entity is not an extractor", "extractor", extractor)
		return nil, false
	}
	return &pass{
		extractor: extractor,
		actor:     actor,
		cfg:       cfg,
		consumed:  make(map[types.EntityID]bool),
	}, true
}

// Interact handles a player using an item on the extractor. A container's
// contents are extracted one by one, then the used item itself is tried
// directly. The extract sound plays once if anything succeeded.
func (s *System) Interact(ctx context.Context, extractor, actor, used types.EntityID) types.TriggerResult {
	p, ok := s.begin(extractor, actor)
	if !ok {
		return types.TriggerResult{}
	}
	p.seen = make(map[types.EntityID]bool)

	success := false
	if s.extractFromStorage(ctx, p, used) {
		success = true
	}
	if s.extractFromProduce(ctx, p, used) {
		success = true
	}

	if success {
		if p.cfg.ExtractSound != "" {
			s.deps.Feedback.PlaySound(p.cfg.ExtractSound, extractor)
		}
		p.result.Handled = true
	}
	return p.result
}

// Dump handles a bulk dump of queued items into the extractor. Queue
// entries are extracted directly; containers are not unwrapped. Every
// entry is evaluated, so a repeated zero-yield item is reported once per
// entry, but an item is credited at most once. A prior result that is
// already handled short-circuits the dump; otherwise the dump's credits
// are added to it.
func (s *System) Dump(ctx context.Context, prior types.TriggerResult, extractor, actor types.EntityID, queue []types.EntityID) types.TriggerResult {
	if prior.Handled {
		return prior
	}
	p, ok := s.begin(extractor, actor)
	if !ok {
		return prior
	}
	p.result = prior
	p.result.Consumed = append([]types.EntityID(nil), prior.Consumed...)

	success := false
	for _, item := range queue {
		if s.extractFromProduce(ctx, p, item) {
			success = true
		}
	}

	if success {
		p.result.Handled = true
		p.result.PlaySound = true
	}
	return p.result
}

// DumpVerb returns the localization key and arguments of the dump verb
// label. ok is false when the entity is not an extractor or is unpowered.
func (s *System) DumpVerb(extractor types.EntityID) (key string, args map[string]any, ok bool) {
	if _, isExtractor := s.deps.Items.Extractor(extractor); !isExtractor {
		return "", nil, false
	}
	if !s.deps.Power.IsPowered(extractor) {
		return "", nil, false
	}
	return MsgDumpVerb, map[string]any{"unit": extractor}, true
}

// extractFromStorage extracts every item held by a container. It reports
// whether at least one stored item was consumed.
func (s *System) extractFromStorage(ctx context.Context, p *pass, used types.EntityID) bool {
	stored, ok := s.deps.Items.StoredItems(used)
	if !ok {
		return false
	}

	success := false
	for _, item := range stored {
		if s.extractFromProduce(ctx, p, item.ID) {
			success = true
		}
	}
	return success
}

// extractFromProduce evaluates a single item and, on a positive yield,
// credits the storage and queues the item for destruction.
func (s *System) extractFromProduce(ctx context.Context, p *pass, item types.EntityID) bool {
	if p.consumed[item] {
		return false
	}
	if p.seen != nil {
		if p.seen[item] {
			return false
		}
		p.seen[item] = true
	}

	sol, ok := s.deps.Items.Solution(item)
	if !ok {
		return false
	}

	out := Evaluate(p.cfg, sol)
	if !out.Consumed {
		s.deps.Feedback.ShowMessage(MsgWrongReagent, p.actor, map[string]any{"used": item})
		return false
	}

	if err := s.deps.Storage.CreditMaterial(ctx, p.extractor, p.cfg.ExtractedMaterial, out.Yield); err != nil {
		s.logger.Errorw("crediting material failed; item kept",
			"extractor", p.extractor, "item", item, "material", p.cfg.ExtractedMaterial,
			"amount", out.Yield, "error", err)
		return false
	}
	s.deps.Destroy.QueueDestroy(item)
	p.consumed[item] = true

	s.logger.Infow("extracted produce",
		"extractor", p.extractor, "item", item,
		"material", p.cfg.ExtractedMaterial, "amount", out.Yield)

	p.result.Credited += out.Yield
	p.result.Consumed = append(p.result.Consumed, item)
	return true
}
