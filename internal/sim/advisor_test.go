package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/startup-sim/internal/types"
)

func adviceTopics(items []*types.AdviceItem) []string {
	topics := make([]string, len(items))
	for i, item := range items {
		topics[i] = item.RelatedTo
	}
	return topics
}

func TestAdviceCandidatesStrugglingCompany(t *testing.T) {
	c := baselineCompany()
	c.Cash = 10000
	c.Customers = 10
	c.Employees = 3
	c.MarketShare = 0.04

	rec := &types.FinancialRecord{
		Revenue:       1000,
		Expenses:      30000,
		Profit:        -29000,
		MarketingCost: 9000,
	}

	topics := adviceTopics(adviceCandidates(c, rec))

	assert.Contains(t, topics, "runway")
	assert.Contains(t, topics, "margin")
	assert.Contains(t, topics, "unit_economics")
	assert.Contains(t, topics, "market_share")
	assert.Contains(t, topics, "marketing_spend")
	assert.Contains(t, topics, "headcount")
	assert.Contains(t, topics, "productivity")
}

func TestAdviceCandidatesRunwayBands(t *testing.T) {
	c := baselineCompany()
	rec := &types.FinancialRecord{Expenses: 30000}

	c.Cash = 50000 // 5 months of burn
	items := adviceCandidates(c, rec)
	require.NotEmpty(t, items)
	assert.Equal(t, "Critical Runway", items[0].Title)

	c.Cash = 100000 // 10 months of burn
	items = adviceCandidates(c, rec)
	require.NotEmpty(t, items)
	assert.Equal(t, "Runway Needs Attention", items[0].Title)

	c.Cash = 600000 // 60 months of burn
	assert.NotContains(t, adviceTopics(adviceCandidates(c, rec)), "runway")
}

func TestAdviceCandidatesHealthyCompany(t *testing.T) {
	c := baselineCompany()
	c.Cash = 600000
	c.Customers = 50
	c.Employees = 20
	c.MarketShare = 0.10

	rec := &types.FinancialRecord{
		Revenue:       50000,
		Expenses:      30000,
		Profit:        10000,
		MarketingCost: 20000,
	}

	// LTV well above 3x CAC is the only rule that fires here
	items := adviceCandidates(c, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "unit_economics", items[0].RelatedTo)
	assert.Equal(t, types.AdviceMarketing, items[0].Type)
}

func TestAdviceCandidatesDegenerateState(t *testing.T) {
	c := baselineCompany()
	c.Customers = 0
	c.Employees = 20
	c.MarketShare = 0.10

	// Zero revenue, zero expenses, zero customers must not panic; only the
	// customer band rule applies
	rec := &types.FinancialRecord{}

	items := adviceCandidates(c, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "customers", items[0].RelatedTo)
}

func TestSampleAdvice(t *testing.T) {
	c := baselineCompany()
	candidates := make([]*types.AdviceItem, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, newAdvice(c, types.AdviceGeneral, "Advice", "Content", "topic"))
	}

	sampled := sampleAdvice(candidates, NewRand(42))

	require.GreaterOrEqual(t, len(sampled), 2)
	require.LessOrEqual(t, len(sampled), 4)
	seen := make(map[*types.AdviceItem]bool)
	for _, item := range sampled {
		assert.Contains(t, candidates, item)
		assert.False(t, seen[item], "duplicate item in sample")
		seen[item] = true
	}
}

func TestSampleAdviceFewCandidates(t *testing.T) {
	c := baselineCompany()
	one := []*types.AdviceItem{newAdvice(c, types.AdviceGeneral, "Advice", "Content", "topic")}

	assert.Len(t, sampleAdvice(one, NewRand(1)), 1)
	assert.Empty(t, sampleAdvice(nil, NewRand(1)))
}
