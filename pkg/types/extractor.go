// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EntityID identifies an entity in the world (extractor, actor, item, container).
type EntityID string

// ReagentID identifies a chemical reagent kind (e.g. "Nutriment").
type ReagentID string

// MaterialID identifies a stored crafting material kind (e.g. "Biomass").
type MaterialID string

// SoundRef names a sound asset played as feedback.
type SoundRef string

// ReagentQuantity is one reagent entry in a Solution.
type ReagentQuantity struct {
	Reagent  ReagentID `json:"reagent" yaml:"reagent" validate:"required"`
	Quantity float64   `json:"quantity" yaml:"quantity" validate:"gte=0"`
}

// Solution is the chemical payload carried by an item. Contents keep
// their declared order.
type Solution struct {
	Name     string            `json:"name" yaml:"name"`
	Contents []ReagentQuantity `json:"contents" yaml:"contents" validate:"dive"`
}

// ExtractorConfig describes what an extractor device accepts and produces.
type ExtractorConfig struct {
	// ExtractionReagents lists the reagents that count toward yield.
	ExtractionReagents []ReagentID `json:"extraction_reagents" yaml:"extraction_reagents" validate:"required,min=1,dive,required"`

	// ExtractedMaterial is the material credited to the extractor's storage.
	ExtractedMaterial MaterialID `json:"extracted_material" yaml:"extracted_material" validate:"required"`

	// ExtractSound is played once per successful interaction. Optional.
	ExtractSound SoundRef `json:"extract_sound,omitempty" yaml:"extract_sound,omitempty"`
}

// Accepts reports whether reagent counts toward this extractor's yield.
func (c ExtractorConfig) Accepts(reagent ReagentID) bool {
	for _, r := range c.ExtractionReagents {
		if r == reagent {
			return true
		}
	}
	return false
}

// Outcome is the result of evaluating one item against an extractor.
type Outcome struct {
	Yield    int  `json:"yield" yaml:"yield"`
	Consumed bool `json:"consumed" yaml:"consumed"`
}

// StoredItem is one entry in a container: the stored entity and its slot.
type StoredItem struct {
	ID       EntityID `json:"id" yaml:"id" validate:"required"`
	Location string   `json:"location,omitempty" yaml:"location,omitempty"`
}

// TriggerKind selects which handlers a trigger is dispatched to.
type TriggerKind string

const (
	TriggerInteract TriggerKind = "interact"
	TriggerDump     TriggerKind = "dump"
)

// Trigger is an inbound gameplay event aimed at an extractor.
// Interact triggers carry Used; dump triggers carry Queue.
type Trigger struct {
	Kind      TriggerKind `json:"kind" yaml:"kind"`
	Extractor EntityID    `json:"extractor" yaml:"extractor"`
	Actor     EntityID    `json:"actor" yaml:"actor"`
	Used      EntityID    `json:"used,omitempty" yaml:"used,omitempty"`
	Queue     []EntityID  `json:"queue,omitempty" yaml:"queue,omitempty"`
}

// TriggerResult is propagated back to the caller and to later handlers
// in the same dispatch chain.
type TriggerResult struct {
	Handled   bool `json:"handled" yaml:"handled"`
	PlaySound bool `json:"play_sound" yaml:"play_sound"`

	// Credited is the total material amount credited while handling.
	Credited int `json:"credited" yaml:"credited"`

	// Consumed lists the items queued for destruction, in extraction order.
	Consumed []EntityID `json:"consumed,omitempty" yaml:"consumed,omitempty"`
}
