// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"math"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// Evaluate computes how much material an item's solution yields for an
// extractor. Quantities of accepted reagents are summed and the total is
// truncated toward zero; the fractional remainder is discarded. Totals
// beyond the int range saturate at math.MaxInt. The item is consumed if
// and only if the yield is positive.
func Evaluate(cfg types.ExtractorConfig, sol types.Solution) types.Outcome {
	var total float64
	for _, rq := range sol.Contents {
		if !cfg.Accepts(rq.Reagent) {
			continue
		}
		total += rq.Quantity
	}

	var yield int
	switch {
	case math.IsNaN(total) || total <= 0:
		yield = 0
	case total >= math.MaxInt:
		yield = math.MaxInt
	default:
		yield = int(math.Trunc(total))
	}
	return types.Outcome{Yield: yield, Consumed: yield > 0}
}
