package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/startup-sim/internal/types"
)

func competitorsWithShares(shares ...float64) []*types.Competitor {
	comps := make([]*types.Competitor, len(shares))
	for i, s := range shares {
		comps[i] = &types.Competitor{
			ID:          string(rune('a' + i)),
			Name:        "Competitor",
			MarketShare: s,
		}
	}
	return comps
}

func shareSum(comps []*types.Competitor) float64 {
	sum := 0.0
	for _, c := range comps {
		sum += c.MarketShare
	}
	return sum
}

func TestRebalanceProportionalSqueeze(t *testing.T) {
	comps := competitorsWithShares(0.5, 0.3, 0.15, 0.05)

	share := rebalanceCompetitors(0.20, comps)

	assert.Equal(t, 0.20, share)
	assert.InDelta(t, 0.40, comps[0].MarketShare, 1e-9)
	assert.InDelta(t, 0.24, comps[1].MarketShare, 1e-9)
	assert.InDelta(t, 0.12, comps[2].MarketShare, 1e-9)
	assert.InDelta(t, 0.04, comps[3].MarketShare, 1e-9)
	assert.InDelta(t, 0.80, shareSum(comps), shareTolerance)
}

func TestRebalanceConservation(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 50; i++ {
		comps := competitorsWithShares(
			0.1+rng.Float64()*0.3,
			0.1+rng.Float64()*0.3,
			0.05+rng.Float64()*0.1,
		)
		businessShare := 0.05 + rng.Float64()*0.5

		got := rebalanceCompetitors(businessShare, comps)

		assert.InDelta(t, 1.0, got+shareSum(comps), shareTolerance)
		for _, comp := range comps {
			assert.GreaterOrEqual(t, comp.MarketShare, competitorShareFloor)
		}
	}
}

func TestRebalanceFloorUnderExtremeGrowth(t *testing.T) {
	comps := competitorsWithShares(0.01, 0.01, 0.01)

	share := rebalanceCompetitors(0.97, comps)

	assert.Equal(t, 0.97, share)
	for _, comp := range comps {
		assert.InDelta(t, competitorShareFloor, comp.MarketShare, 1e-9)
	}
}

func TestRebalanceCapsBusinessShare(t *testing.T) {
	comps := competitorsWithShares(0.05, 0.05, 0.05, 0.05)

	// The pool cannot shrink below n floors, so the business share gets
	// pulled back to make room
	share := rebalanceCompetitors(0.999, comps)

	assert.InDelta(t, 0.96, share, 1e-9)
	assert.InDelta(t, 1.0, share+shareSum(comps), shareTolerance)
}

func TestRebalanceExhaustedPool(t *testing.T) {
	comps := competitorsWithShares(0, 0)

	share := rebalanceCompetitors(0.5, comps)

	assert.Equal(t, 0.5, share)
	assert.InDelta(t, 0.25, comps[0].MarketShare, 1e-9)
	assert.InDelta(t, 0.25, comps[1].MarketShare, 1e-9)
}

func TestRebalanceNoCompetitors(t *testing.T) {
	assert.Equal(t, 0.3, rebalanceCompetitors(0.3, nil))
}

func TestGenerateCompetitors(t *testing.T) {
	c := baselineCompany()
	rng := NewRand(42)

	comps := generateCompetitors(c, rng, 3, 5)

	require.GreaterOrEqual(t, len(comps), 3)
	require.LessOrEqual(t, len(comps), 5)
	assert.InDelta(t, 1.0, c.MarketShare+shareSum(comps), shareTolerance)
	for _, comp := range comps {
		assert.NotEmpty(t, comp.ID)
		assert.NotEmpty(t, comp.Name)
		assert.Equal(t, c.ID, comp.CompanyID)
		assert.Equal(t, c.Type, comp.Type)
		assert.Greater(t, comp.MarketShare, 0.0)
		assert.GreaterOrEqual(t, comp.Strength, 1)
		assert.LessOrEqual(t, comp.Strength, 10)
		assert.Contains(t, competitorFocusPool, comp.Focus)
	}
}

func TestCopyCompetitorsIsDeep(t *testing.T) {
	original := competitorsWithShares(0.4, 0.3)

	copied := copyCompetitors(original)
	copied[0].MarketShare = 0.99

	assert.Equal(t, 0.4, original[0].MarketShare)
}
