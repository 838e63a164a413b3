package sim

import (
	"github.com/google/uuid"
	"github.com/user/startup-sim/config"
	"github.com/user/startup-sim/internal/types"
)

// Fixed expense-category breakdown used for financial record snapshots.
// Display configuration, not simulation input, but the constants are part of
// the record contract.
const (
	marketingCostShare   = 0.30
	developmentCostShare = 0.40
	operationsCostShare  = 0.10
	hrCostShare          = 0.15
	otherCostShare       = 0.05
)

// nextQuarter rolls the quarter counter, wrapping 4 -> 1 with year+1.
func nextQuarter(quarter, year int) (int, int) {
	if quarter >= 4 {
		return 1, year + 1
	}
	return quarter + 1, year
}

// advanceQuarter performs one full quarter transition on copies of the
// company and its competitors, leaving the inputs untouched. The caller
// persists the result as a whole, which keeps the transition all-or-nothing.
//
// Stat order within the transition: product progress first, then the
// customer base (driven by the fresh progress and last quarter's spend),
// then revenue from the new customer count, then expenses, cash and
// valuation. Market share only moves through decisions; the competitor pool
// is rebalanced against it every quarter regardless.
func advanceQuarter(c *types.Company, comps []*types.Competitor, gameCfg config.GameConfig, rng *Rand) *types.AdvanceResult {
	pre := snapshotOf(c)
	updated := *c
	competitors := copyCompetitors(comps)

	updated.CurrentQuarter, updated.CurrentYear = nextQuarter(c.CurrentQuarter, c.CurrentYear)

	progress := nextProductProgress(c)
	customers := customerCount(c, progress)
	revenue := quarterlyRevenue(c, customers, progress)
	expenses := quarterlyExpenses(c, customers)

	updated.ProductProgress = progress
	updated.Customers = customers
	updated.Revenue = revenue
	updated.Expenses = expenses
	updated.Cash = cashAfterQuarter(c, revenue, expenses)
	updated.Valuation = valuation(c, revenue)
	updated.QuarterlyBurnRate = expenses / 3

	updated.MarketShare = rebalanceCompetitors(updated.MarketShare, competitors)

	events := evaluateQuarterEvents(&updated, pre, snapshotOf(&updated), rng, gameCfg.RandomEventProbability)

	record := &types.FinancialRecord{
		ID:              uuid.New().String(),
		CompanyID:       updated.ID,
		Quarter:         updated.CurrentQuarter,
		Year:            updated.CurrentYear,
		Revenue:         revenue,
		Expenses:        expenses,
		Profit:          revenue - expenses,
		Cash:            updated.Cash,
		MarketingCost:   expenses * marketingCostShare,
		DevelopmentCost: expenses * developmentCostShare,
		OperationsCost:  expenses * operationsCostShare,
		HRCost:          expenses * hrCostShare,
		OtherCosts:      expenses * otherCostShare,
		Valuation:       updated.Valuation,
		Customers:       customers,
	}

	decisions := generateQuarterDecisions(&updated, rng, gameCfg.CrisisDecisionProbability)
	advice := sampleAdvice(adviceCandidates(&updated, record), rng)

	return &types.AdvanceResult{
		Company:     &updated,
		Record:      record,
		Events:      events,
		Decisions:   decisions,
		Advice:      advice,
		Competitors: competitors,
	}
}
