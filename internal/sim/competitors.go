package sim

import (
	"github.com/google/uuid"
	"github.com/user/startup-sim/internal/types"
)

const (
	// Competitors are squeezed but never fully eliminated.
	competitorShareFloor = 0.01

	// Company share above this threshold is taken from the competitor pool.
	competitorGainThreshold = 0.05

	shareTolerance = 1e-6
)

var competitorNamePool = []string{
	"Apex Dynamics", "BlueShift Labs", "Cobalt Works", "DeltaForge",
	"Everline", "Fathom Industries", "Greyline Systems", "Helix Trade",
	"Ironwood Group", "Juniper & Co", "Kestrel Digital", "Longview Partners",
}

var competitorFocusPool = []string{
	"pricing", "quality", "innovation", "service", "scale",
}

// generateCompetitors creates the initial competitor set at company setup.
// Shares are random weights normalized so that the company's share plus the
// competitor pool sums to exactly 1.
func generateCompetitors(c *types.Company, rng *Rand, minCount, maxCount int) []*types.Competitor {
	n := rng.Between(minCount, maxCount)
	pool := 1 - c.MarketShare

	weights := make([]float64, n)
	total := 0.0
	for i := range weights {
		weights[i] = 0.5 + rng.Float64()
		total += weights[i]
	}

	nameOffset := rng.Intn(len(competitorNamePool))
	comps := make([]*types.Competitor, 0, n)
	for i := 0; i < n; i++ {
		comps = append(comps, &types.Competitor{
			ID:          uuid.New().String(),
			CompanyID:   c.ID,
			Name:        competitorNamePool[(nameOffset+i)%len(competitorNamePool)],
			Type:        c.Type,
			MarketShare: pool * weights[i] / total,
			Strength:    rng.Between(1, 10),
			Focus:       competitorFocusPool[rng.Intn(len(competitorFocusPool))],
		})
	}
	return comps
}

// rebalanceCompetitors redistributes the zero-sum market-share pool after a
// quarter transition. Share the company holds above the gain threshold is
// taken from competitors proportionally to their current weight, each
// competitor is floored, and the pool is renormalized so company share plus
// competitor shares sums to exactly 1.
//
// Returns the company share actually left standing: when the floor makes
// exact conservation impossible (pool smaller than n floors) the company
// share is pulled back so both invariants hold.
func rebalanceCompetitors(businessShare float64, comps []*types.Competitor) float64 {
	if len(comps) == 0 {
		return businessShare
	}

	minPool := competitorShareFloor * float64(len(comps))
	if 1-businessShare < minPool {
		businessShare = 1 - minPool
	}
	pool := 1 - businessShare

	total := 0.0
	for _, comp := range comps {
		total += comp.MarketShare
	}

	if businessShare > competitorGainThreshold {
		gain := businessShare - competitorGainThreshold
		if total <= 0 {
			// Exhausted pool: skip proportional distribution, split evenly.
			for _, comp := range comps {
				comp.MarketShare = pool / float64(len(comps))
			}
			return businessShare
		}
		for _, comp := range comps {
			comp.MarketShare -= gain * (comp.MarketShare / total)
			if comp.MarketShare < competitorShareFloor {
				comp.MarketShare = competitorShareFloor
			}
		}
	}

	// Renormalize so the invariant holds regardless of how shares moved.
	sum := 0.0
	for _, comp := range comps {
		sum += comp.MarketShare
	}
	if sum <= 0 {
		for _, comp := range comps {
			comp.MarketShare = pool / float64(len(comps))
		}
		return businessShare
	}
	scale := pool / sum
	for _, comp := range comps {
		comp.MarketShare *= scale
		if comp.MarketShare < competitorShareFloor {
			comp.MarketShare = competitorShareFloor
		}
	}

	// Floors applied after scaling can overshoot the pool; settle the
	// difference against the largest competitor.
	sum = 0
	largest := comps[0]
	for _, comp := range comps {
		sum += comp.MarketShare
		if comp.MarketShare > largest.MarketShare {
			largest = comp
		}
	}
	if diff := sum - pool; diff > shareTolerance || diff < -shareTolerance {
		largest.MarketShare -= diff
	}
	return businessShare
}

// copyCompetitors deep-copies a competitor slice so a failed transition
// never leaks partial mutations.
func copyCompetitors(comps []*types.Competitor) []*types.Competitor {
	out := make([]*types.Competitor, len(comps))
	for i, comp := range comps {
		cp := *comp
		out[i] = &cp
	}
	return out
}
