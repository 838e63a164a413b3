package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/user/startup-sim/internal/types"
)

// Advisory thresholds. Candidates fire on these bands; the final output is a
// random sample of the candidate list so the player is not flooded.
const (
	runwayCriticalMonths = 6.0
	runwayWarningMonths  = 12.0
	marginLowThreshold   = -0.25
	marginHighThreshold  = 0.30
	ltvCACHealthyRatio   = 3.0
	shareLowBand         = 0.05
	shareHighBand        = 0.15
	customersLowBand     = 10
	customersHighBand    = 100
	marketingSpendRatio  = 0.5
	employeesLowBand     = 5
	employeesHighBand    = 50
)

func newAdvice(c *types.Company, atype types.AdviceType, title, content, relatedTo string) *types.AdviceItem {
	return &types.AdviceItem{
		ID:        uuid.New().String(),
		CompanyID: c.ID,
		Type:      atype,
		Title:     title,
		Content:   content,
		RelatedTo: relatedTo,
		Quarter:   c.CurrentQuarter,
		Year:      c.CurrentYear,
	}
}

// adviceCandidates evaluates the full advisory rule table against the
// post-transition company and its latest financial record. Zero
// denominators (no revenue, no customers, no burn) are degenerate states:
// the affected rules contribute nothing rather than dividing by zero.
func adviceCandidates(c *types.Company, rec *types.FinancialRecord) []*types.AdviceItem {
	var out []*types.AdviceItem

	// Runway in months of burn.
	monthlyBurn := rec.Expenses / 3
	if monthlyBurn > 0 {
		runway := c.Cash / monthlyBurn
		if runway < runwayCriticalMonths {
			out = append(out, newAdvice(c, types.AdviceFinancial,
				"Critical Runway",
				fmt.Sprintf("Cash covers about %.1f months of burn. Cut costs or raise capital now.", runway),
				"runway"))
		} else if runway < runwayWarningMonths {
			out = append(out, newAdvice(c, types.AdviceFinancial,
				"Runway Needs Attention",
				fmt.Sprintf("Cash covers about %.1f months of burn. Start planning the next raise.", runway),
				"runway"))
		}
	}

	// Profit margin extremes.
	if rec.Revenue > 0 {
		margin := rec.Profit / rec.Revenue
		if margin < marginLowThreshold {
			out = append(out, newAdvice(c, types.AdviceFinancial,
				"Deeply Unprofitable",
				"Losses are running far ahead of revenue. Revisit pricing and the cost base.",
				"margin"))
		} else if margin > marginHighThreshold {
			out = append(out, newAdvice(c, types.AdviceFinancial,
				"Room to Reinvest",
				"Margins are unusually strong. Consider reinvesting in growth before competitors catch up.",
				"margin"))
		}
	}

	// Unit economics: estimated LTV against CAC.
	if c.Customers > 0 {
		cac := rec.MarketingCost / float64(c.Customers)
		ltv := (rec.Revenue / float64(c.Customers)) * 4
		if cac > 0 {
			if ltv < cac {
				out = append(out, newAdvice(c, types.AdviceMarketing,
					"Acquisition Costs Exceed Value",
					"Each customer costs more to acquire than they return. Fix retention or cut spend.",
					"unit_economics"))
			} else if ltv > ltvCACHealthyRatio*cac {
				out = append(out, newAdvice(c, types.AdviceMarketing,
					"Underinvesting in Acquisition",
					"Customer value is more than three times acquisition cost. Spending more here should pay off.",
					"unit_economics"))
			}
		}
	}

	// Market position bands.
	if c.MarketShare < shareLowBand {
		out = append(out, newAdvice(c, types.AdviceMarketing,
			"Marginal Market Position",
			"Market share is under 5%. Focus on a niche where the product can win outright.",
			"market_share"))
	} else if c.MarketShare >= shareHighBand {
		out = append(out, newAdvice(c, types.AdviceGeneral,
			"Market Leadership in Sight",
			"Market share is at or above 15%. Defend the position; competitors will respond.",
			"market_share"))
	}

	// Customer base bands.
	if c.Customers < customersLowBand {
		out = append(out, newAdvice(c, types.AdviceProduct,
			"Find Product-Market Fit",
			"Fewer than ten customers. Talk to each one and ship what they actually need.",
			"customers"))
	} else if c.Customers >= customersHighBand {
		out = append(out, newAdvice(c, types.AdviceProduct,
			"Scale the Customer Experience",
			"Past one hundred customers, ad hoc support stops working. Invest in onboarding and success.",
			"customers"))
	}

	// Marketing spend relative to revenue.
	if rec.Revenue > 0 && rec.MarketingCost/rec.Revenue > marketingSpendRatio {
		out = append(out, newAdvice(c, types.AdviceFinancial,
			"Marketing Spend Out of Proportion",
			"Marketing consumes more than half of revenue. Verify the channels actually convert.",
			"marketing_spend"))
	}

	// Team size bands.
	if c.Employees < employeesLowBand {
		out = append(out, newAdvice(c, types.AdviceHR,
			"Thin Team",
			"With so few people, every departure is existential. Hire for the biggest bottleneck first.",
			"headcount"))
	} else if c.Employees > employeesHighBand {
		out = append(out, newAdvice(c, types.AdviceHR,
			"Organization Overhead",
			"Past fifty people, informal coordination breaks down. Put managers and process in place.",
			"headcount"))
	}

	// Per-employee economics.
	if c.Employees > 0 {
		revenuePerEmployee := rec.Revenue / float64(c.Employees)
		expensePerEmployee := rec.Expenses / float64(c.Employees)
		if revenuePerEmployee < expensePerEmployee {
			out = append(out, newAdvice(c, types.AdviceHR,
				"Team Not Paying for Itself",
				"Revenue per employee is below cost per employee. Grow revenue before growing the team.",
				"productivity"))
		}
	}

	return out
}

// sampleAdvice picks 2-4 candidates at random (Fisher-Yates shuffle, then
// slice) so the quarterly feed stays digestible. Fewer candidates than the
// sample size are returned as-is.
func sampleAdvice(candidates []*types.AdviceItem, rng *Rand) []*types.AdviceItem {
	shuffled := make([]*types.AdviceItem, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	n := rng.Between(2, 4)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
