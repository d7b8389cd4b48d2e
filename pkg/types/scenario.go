// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Scenario is the on-disk description of a small world: the reagents it
// knows about and the entities in it.
type Scenario struct {
	// Reagents lists every reagent id the scenario may reference.
	Reagents []ReagentID `json:"reagents" yaml:"reagents" validate:"dive,required"`

	Entities []Entity `json:"entities" yaml:"entities" validate:"dive"`
}

// Entity is a world entity with optional components. A nil component
// means the entity does not have it.
type Entity struct {
	ID   EntityID `json:"id" yaml:"id" validate:"required"`
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`

	// Solutions holds named chemical payloads carried by the entity.
	Solutions map[string][]ReagentQuantity `json:"solutions,omitempty" yaml:"solutions,omitempty" validate:"omitempty,dive,dive"`

	Produce   *ProduceComponent `json:"produce,omitempty" yaml:"produce,omitempty"`
	Storage   *StorageComponent `json:"storage,omitempty" yaml:"storage,omitempty"`
	Extractor *ExtractorConfig  `json:"extractor,omitempty" yaml:"extractor,omitempty"`
	Power     *PowerComponent   `json:"power,omitempty" yaml:"power,omitempty"`
}

// ProduceComponent marks a plant-derived item whose named solution can be
// extracted.
type ProduceComponent struct {
	// Solution names the entry in Entity.Solutions holding the produce
	// chemicals (default "food").
	Solution string `json:"solution,omitempty" yaml:"solution,omitempty"`
}

// StorageComponent marks a container and lists what it holds.
type StorageComponent struct {
	Items []StoredItem `json:"items" yaml:"items" validate:"dive"`
}

// PowerComponent tracks whether a device is receiving power.
type PowerComponent struct {
	Powered bool `json:"powered" yaml:"powered"`
}

// DefaultProduceSolution is the solution name used when a produce
// component does not name one.
const DefaultProduceSolution = "food"
