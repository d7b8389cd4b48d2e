// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package world

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/biogenerator/pkg/types"
)

var validate = validator.New()

// ErrInvalidScenario marks every scenario validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Validate checks struct constraints and cross references of a scenario:
// unique entity ids, known reagents, produce solutions that exist and
// container items that refer to existing entities. The first problem
// found is returned, with a hint naming the closest known id when there
// is one.
func Validate(sc *types.Scenario) error {
	if err := validate.Struct(sc); err != nil {
		return errors.Mark(errors.Wrap(err, "scenario validation failed"), ErrInvalidScenario)
	}

	known := make(map[types.ReagentID]bool, len(sc.Reagents))
	reagentNames := make([]string, 0, len(sc.Reagents))
	for _, r := range sc.Reagents {
		known[r] = true
		reagentNames = append(reagentNames, string(r))
	}

	ids := make(map[types.EntityID]bool, len(sc.Entities))
	idNames := make([]string, 0, len(sc.Entities))
	for _, e := range sc.Entities {
		if ids[e.ID] {
			return invalid(errors.Newf("duplicate entity id %q", e.ID))
		}
		ids[e.ID] = true
		idNames = append(idNames, string(e.ID))
	}

	checkReagent := func(owner types.EntityID, r types.ReagentID) error {
		if known[r] {
			return nil
		}
		err := errors.Newf("entity %q references unknown reagent %q", owner, r)
		return invalid(withSuggestion(err, string(r), reagentNames))
	}

	for _, e := range sc.Entities {
		for _, contents := range e.Solutions {
			for _, q := range contents {
				if err := checkReagent(e.ID, q.Reagent); err != nil {
					return err
				}
			}
		}
		if e.Extractor != nil {
			for _, r := range e.Extractor.ExtractionReagents {
				if err := checkReagent(e.ID, r); err != nil {
					return err
				}
			}
		}
		if e.Produce != nil {
			name := produceSolution(&e)
			if _, ok := e.Solutions[name]; !ok {
				return invalid(errors.Newf("produce %q has no solution named %q", e.ID, name))
			}
		}
		if e.Storage != nil {
			for _, it := range e.Storage.Items {
				if !ids[it.ID] {
					err := errors.Newf("container %q holds unknown entity %q", e.ID, it.ID)
					return invalid(withSuggestion(err, string(it.ID), idNames))
				}
			}
		}
	}
	return nil
}

func invalid(err error) error {
	return errors.Mark(err, ErrInvalidScenario)
}

// withSuggestion attaches a "did you mean" hint when a candidate is close
// enough to the unknown name.
func withSuggestion(err error, name string, candidates []string) error {
	if s, ok := Suggest(name, candidates); ok {
		return errors.WithHintf(err, "did you mean %q?", s)
	}
	return err
}

// Suggest returns the candidate closest to name by edit distance.
// Matching ignores case. Candidates further than a third of the name's
// length (minimum 2 edits) are not suggested.
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" || len(candidates) == 0 {
		return "", false
	}

	type scored struct {
		val  string
		dist int
	}
	lower := strings.ToLower(name)
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}

	var results []scored
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d <= limit {
			results = append(results, scored{c, d})
		}
	}
	if len(results) == 0 {
		return "", false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})
	return results[0].val, true
}
