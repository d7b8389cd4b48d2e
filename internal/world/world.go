// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package world holds a small in-memory entity world loaded from a YAML
// scenario. It answers the component queries the extractor system needs
// (power, produce solutions, container contents, extractor configuration)
// and applies deferred item destruction.
package world

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// World is a mutable view over a scenario.
type World struct {
	reagents []types.ReagentID
	entities []*types.Entity
	byID     map[types.EntityID]*types.Entity
	pending  []types.EntityID
}

// Load reads, validates and indexes the scenario at path.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading scenario %s", path)
	}
	return w, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*World, error) {
	var sc types.Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "parsing scenario YAML")
	}
	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return New(sc), nil
}

// New indexes an already validated scenario.
func New(sc types.Scenario) *World {
	w := &World{reagents: append([]types.ReagentID(nil), sc.Reagents...)}
	for i := range sc.Entities {
		e := sc.Entities[i]
		w.entities = append(w.entities, &e)
	}
	w.reindex()
	return w
}

func (w *World) reindex() {
	w.byID = make(map[types.EntityID]*types.Entity, len(w.entities))
	for _, e := range w.entities {
		w.byID[e.ID] = e
	}
}

// Scenario returns the current state as a scenario document.
func (w *World) Scenario() types.Scenario {
	sc := types.Scenario{Reagents: append([]types.ReagentID(nil), w.reagents...)}
	for _, e := range w.entities {
		sc.Entities = append(sc.Entities, *e)
	}
	return sc
}

// Save writes the current state to path.
func (w *World) Save(path string) error {
	data, err := yaml.Marshal(w.Scenario())
	if err != nil {
		return errors.Wrap(err, "marshaling scenario")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing scenario %s", path)
	}
	return nil
}

// Entity returns the entity with id.
func (w *World) Entity(id types.EntityID) (*types.Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// IsPowered reports whether a device has power. Entities without a power
// component need none and always count as powered. Unknown entities are
// unpowered.
func (w *World) IsPowered(id types.EntityID) bool {
	e, ok := w.byID[id]
	if !ok {
		return false
	}
	return e.Power == nil || e.Power.Powered
}

// SetPowered sets the power state of a device, adding a power component
// if needed.
func (w *World) SetPowered(id types.EntityID, powered bool) error {
	e, ok := w.byID[id]
	if !ok {
		return errors.Newf("unknown entity %q", id)
	}
	e.Power = &types.PowerComponent{Powered: powered}
	return nil
}

// Extractor returns the extractor configuration of a device.
func (w *World) Extractor(id types.EntityID) (types.ExtractorConfig, bool) {
	e, ok := w.byID[id]
	if !ok || e.Extractor == nil {
		return types.ExtractorConfig{}, false
	}
	return *e.Extractor, true
}

// Solution returns the produce solution of an item.
func (w *World) Solution(id types.EntityID) (types.Solution, bool) {
	e, ok := w.byID[id]
	if !ok || e.Produce == nil {
		return types.Solution{}, false
	}
	name := produceSolution(e)
	contents, ok := e.Solutions[name]
	if !ok {
		return types.Solution{}, false
	}
	return types.Solution{Name: name, Contents: contents}, true
}

// StoredItems returns the contents of a container.
func (w *World) StoredItems(id types.EntityID) ([]types.StoredItem, bool) {
	e, ok := w.byID[id]
	if !ok || e.Storage == nil {
		return nil, false
	}
	return append([]types.StoredItem(nil), e.Storage.Items...), true
}

// DumpQueue returns the ids stored in a container, in storage order.
func (w *World) DumpQueue(container types.EntityID) ([]types.EntityID, error) {
	items, ok := w.StoredItems(container)
	if !ok {
		return nil, errors.WithHint(
			errors.Newf("entity %q is not a container", container),
			"dump takes a bag or other entity with a storage component")
	}
	queue := make([]types.EntityID, len(items))
	for i, it := range items {
		queue[i] = it.ID
	}
	return queue, nil
}

// QueueDestroy schedules an entity for removal on the next Flush.
func (w *World) QueueDestroy(id types.EntityID) {
	w.pending = append(w.pending, id)
}

// Pending returns the entities queued for removal.
func (w *World) Pending() []types.EntityID {
	return append([]types.EntityID(nil), w.pending...)
}

// Flush removes every queued entity and returns the removed ids in
// removal order. Removing a container also removes what it still holds,
// and removed entities disappear from every container listing them.
func (w *World) Flush() []types.EntityID {
	if len(w.pending) == 0 {
		return nil
	}

	removed := make(map[types.EntityID]bool)
	var order []types.EntityID
	var remove func(id types.EntityID)
	remove = func(id types.EntityID) {
		e, ok := w.byID[id]
		if !ok || removed[id] {
			return
		}
		removed[id] = true
		order = append(order, id)
		if e.Storage != nil {
			for _, it := range e.Storage.Items {
				remove(it.ID)
			}
		}
	}
	for _, id := range w.pending {
		remove(id)
	}
	w.pending = nil

	kept := w.entities[:0]
	for _, e := range w.entities {
		if removed[e.ID] {
			continue
		}
		if e.Storage != nil {
			items := e.Storage.Items[:0]
			for _, it := range e.Storage.Items {
				if !removed[it.ID] {
					items = append(items, it)
				}
			}
			e.Storage.Items = items
		}
		kept = append(kept, e)
	}
	w.entities = kept
	w.reindex()

	return order
}

func produceSolution(e *types.Entity) string {
	if e.Produce != nil && e.Produce.Solution != "" {
		return e.Produce.Solution
	}
	return types.DefaultProduceSolution
}
