package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/startup-sim/config"
	"github.com/user/startup-sim/internal/types"
)

func TestNextQuarter(t *testing.T) {
	q, y := nextQuarter(1, 1)
	assert.Equal(t, 2, q)
	assert.Equal(t, 1, y)

	q, y = nextQuarter(3, 2)
	assert.Equal(t, 4, q)
	assert.Equal(t, 2, y)

	q, y = nextQuarter(4, 2)
	assert.Equal(t, 1, q)
	assert.Equal(t, 3, y)
}

func TestAdvanceQuarterEndToEnd(t *testing.T) {
	c := baselineCompany()
	comps := competitorsWithShares(0.5, 0.3, 0.195)
	cfg := config.DefaultConfig().Game
	cfg.RandomEventProbability = 0

	result := advanceQuarter(c, comps, cfg, NewRand(42))

	updated := result.Company
	assert.Equal(t, 2, updated.CurrentQuarter)
	assert.Equal(t, 1, updated.CurrentYear)
	assert.Equal(t, 28.0, updated.ProductProgress)
	assert.Equal(t, 5, updated.Customers)
	assert.Equal(t, 403.0, updated.Revenue)
	assert.Equal(t, 107641.0, updated.Expenses)
	assert.Equal(t, 250000.0+403-107641, updated.Cash)
	assert.Equal(t, 500000.0, updated.Valuation)
	assert.Equal(t, updated.Expenses/3, updated.QuarterlyBurnRate)

	// Inputs untouched
	assert.Equal(t, 1, c.CurrentQuarter)
	assert.Equal(t, 0.0, c.ProductProgress)
	assert.Equal(t, 0.5, comps[0].MarketShare)

	require.NotNil(t, result.Record)
	require.NotEmpty(t, result.Decisions)
	require.NotEmpty(t, result.Advice)
}

func TestAdvanceQuarterShareConservation(t *testing.T) {
	c := baselineCompany()
	c.MarketShare = 0.20
	comps := competitorsWithShares(0.5, 0.2, 0.1)
	cfg := config.DefaultConfig().Game

	result := advanceQuarter(c, comps, cfg, NewRand(42))

	total := result.Company.MarketShare
	for _, comp := range result.Competitors {
		total += comp.MarketShare
		assert.GreaterOrEqual(t, comp.MarketShare, competitorShareFloor)
	}
	assert.InDelta(t, 1.0, total, shareTolerance)
}

func TestAdvanceQuarterBoundedFields(t *testing.T) {
	c := baselineCompany()
	c.ProductProgress = 99
	c.Cash = 10000000
	cfg := config.DefaultConfig().Game

	result := advanceQuarter(c, competitorsWithShares(0.5, 0.495), cfg, NewRand(42))

	assert.LessOrEqual(t, result.Company.ProductProgress, 100.0)
	assert.GreaterOrEqual(t, result.Company.ProductProgress, 0.0)
	assert.LessOrEqual(t, result.Company.MarketShare, 1.0)
	assert.GreaterOrEqual(t, result.Company.MarketShare, 0.0)
}

func TestAdvanceQuarterRecordBreakdown(t *testing.T) {
	c := baselineCompany()
	cfg := config.DefaultConfig().Game

	result := advanceQuarter(c, competitorsWithShares(0.5, 0.495), cfg, NewRand(42))

	rec := result.Record
	assert.Equal(t, result.Company.ID, rec.CompanyID)
	assert.Equal(t, 2, rec.Quarter)
	assert.Equal(t, 1, rec.Year)
	assert.Equal(t, rec.Revenue-rec.Expenses, rec.Profit)
	assert.InDelta(t, rec.Expenses*0.30, rec.MarketingCost, 1e-9)
	assert.InDelta(t, rec.Expenses*0.40, rec.DevelopmentCost, 1e-9)
	assert.InDelta(t, rec.Expenses*0.10, rec.OperationsCost, 1e-9)
	assert.InDelta(t, rec.Expenses*0.15, rec.HRCost, 1e-9)
	assert.InDelta(t, rec.Expenses*0.05, rec.OtherCosts, 1e-9)
	assert.InDelta(t, rec.Expenses,
		rec.MarketingCost+rec.DevelopmentCost+rec.OperationsCost+rec.HRCost+rec.OtherCosts, 1e-9)
}

// Two advances of the same state with the same seed must be identical in
// every field that is not a generated id or timestamp.
func TestAdvanceQuarterDeterministic(t *testing.T) {
	c := baselineCompany()
	comps := competitorsWithShares(0.5, 0.3, 0.195)
	cfg := config.DefaultConfig().Game

	first := advanceQuarter(c, comps, cfg, NewRand(99))
	second := advanceQuarter(c, comps, cfg, NewRand(99))

	assert.Equal(t, first.Company, second.Company)

	assert.Equal(t, first.Record.Revenue, second.Record.Revenue)
	assert.Equal(t, first.Record.Expenses, second.Record.Expenses)
	assert.Equal(t, first.Record.Cash, second.Record.Cash)
	assert.Equal(t, first.Record.Customers, second.Record.Customers)
	assert.Equal(t, first.Record.Valuation, second.Record.Valuation)

	assert.Equal(t, eventTitles(first.Events), eventTitles(second.Events))

	require.Len(t, second.Decisions, len(first.Decisions))
	for i := range first.Decisions {
		assert.Equal(t, first.Decisions[i].Title, second.Decisions[i].Title)
		assert.Equal(t, first.Decisions[i].Type, second.Decisions[i].Type)
		assert.Equal(t, first.Decisions[i].Consequences[0].Effects, second.Decisions[i].Consequences[0].Effects)
	}

	require.Len(t, second.Advice, len(first.Advice))
	for i := range first.Advice {
		assert.Equal(t, first.Advice[i].Title, second.Advice[i].Title)
	}

	require.Len(t, second.Competitors, len(first.Competitors))
	for i := range first.Competitors {
		assert.Equal(t, first.Competitors[i].MarketShare, second.Competitors[i].MarketShare)
	}
}

func TestAdvanceQuarterAdviceSampleSize(t *testing.T) {
	c := baselineCompany()
	cfg := config.DefaultConfig().Game

	for seed := int64(0); seed < 10; seed++ {
		result := advanceQuarter(c, competitorsWithShares(0.5, 0.495), cfg, NewRand(seed))
		assert.LessOrEqual(t, len(result.Advice), 4)
	}
}

func TestAdvanceQuarterEmitsMilestoneEvents(t *testing.T) {
	c := baselineCompany()
	c.ProductProgress = 20
	cfg := config.DefaultConfig().Game
	cfg.RandomEventProbability = 0

	// 20 -> 48 progress crosses the 25% milestone
	result := advanceQuarter(c, competitorsWithShares(0.5, 0.495), cfg, NewRand(42))

	var milestone *types.Event
	for _, ev := range result.Events {
		if ev.Title == "Product Milestone: 25%" {
			milestone = ev
		}
	}
	require.NotNil(t, milestone)
	assert.Equal(t, types.EventInternal, milestone.Type)
}
