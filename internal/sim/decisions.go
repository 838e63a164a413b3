package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/user/startup-sim/internal/types"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// optionTemplate describes one selectable choice of a decision template.
// Effects builds the consequence delta from the company state at the moment
// the decision is generated; the stored consequence is then static.
type optionTemplate struct {
	Label       string
	Description string
	Cost        float64
	Timeframe   string
	ROI         float64
	CAC         float64
	Outcome     string
	Effects     func(c *types.Company) types.StateEffects
}

type decisionTemplate struct {
	Type        types.DecisionType
	Title       string
	Description string
	Urgency     string
	Options     []optionTemplate
}

// decisionCatalog holds the regular decision templates, at least two per
// decision type.
var decisionCatalog = map[types.DecisionType][]decisionTemplate{
	types.DecisionMarketing: {
		{
			Type:        types.DecisionMarketing,
			Title:       "Growth Marketing Push",
			Description: "Customer acquisition has room to accelerate. How aggressively should we spend?",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Social media blitz", Description: "Short, loud, broad-reach campaign.",
					Cost: 15000, Timeframe: "1 quarter", ROI: 1.8, CAC: 45,
					Outcome: "The campaign lands well and sign-ups climb.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:        fptr(-15000),
							Customers:   iptr(int(math.Round(float64(c.Customers)*1.2)) + 25),
							MarketShare: fptr(math.Min(1, c.MarketShare+0.01)),
						}
					},
				},
				{
					Label: "Performance ads", Description: "Paid search and retargeting at scale.",
					Cost: 30000, Timeframe: "2 quarters", ROI: 2.2, CAC: 38,
					Outcome: "Paid channels convert steadily and share ticks up.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:        fptr(-30000),
							Customers:   iptr(int(math.Round(float64(c.Customers)*1.35)) + 60),
							MarketShare: fptr(math.Min(1, c.MarketShare+0.02)),
						}
					},
				},
				{
					Label: "Community building", Description: "Slow-burn organic content and referrals.",
					Cost: 8000, Timeframe: "2 quarters", ROI: 1.4, CAC: 60,
					Outcome: "Word of mouth grows the base modestly but cheaply.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-8000),
							Customers: iptr(int(math.Round(float64(c.Customers)*1.1)) + 10),
						}
					},
				},
			},
		},
		{
			Type:        types.DecisionMarketing,
			Title:       "Brand Repositioning",
			Description: "The current brand is not resonating with the target segment.",
			Urgency:     types.UrgencyLow,
			Options: []optionTemplate{
				{
					Label: "Full rebrand", Description: "New identity, new site, new pitch.",
					Cost: 40000, Timeframe: "2 quarters", ROI: 1.5,
					Outcome: "The refreshed brand opens doors with bigger clients.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:        fptr(-40000),
							Revenue:     fptr(math.Round(c.Revenue * 1.05)),
							MarketShare: fptr(math.Min(1, c.MarketShare*1.15+0.005)),
						}
					},
				},
				{
					Label: "Messaging refresh", Description: "Sharper copy, same identity.",
					Cost: 12000, Timeframe: "1 quarter", ROI: 1.3,
					Outcome: "Clearer messaging lifts conversion slightly.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-12000),
							Revenue:   fptr(math.Round(c.Revenue * 1.02)),
							Customers: iptr(int(math.Round(float64(c.Customers)*1.05)) + 5),
						}
					},
				},
			},
		},
	},
	types.DecisionHiring: {
		{
			Type:        types.DecisionHiring,
			Title:       "Engineering Capacity",
			Description: "The roadmap is slipping. Engineering needs more hands.",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Two senior engineers", Description: "Expensive but immediately productive.",
					Cost: 20000, Timeframe: "1 quarter", ROI: 1.6,
					Outcome: "The new seniors unblock the roadmap quickly.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-20000),
							Employees:       iptr(c.Employees + 2),
							ProductProgress: fptr(8),
						}
					},
				},
				{
					Label: "Offshore team", Description: "Four developers through an agency.",
					Cost: 12000, Timeframe: "2 quarters", ROI: 1.4,
					Outcome: "Throughput rises, along with coordination overhead.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-12000),
							Employees:       iptr(c.Employees + 4),
							ProductProgress: fptr(5),
							Expenses:        fptr(math.Round(c.Expenses * 1.1)),
						}
					},
				},
				{
					Label: "Single contractor", Description: "One specialist for the critical path.",
					Cost: 6000, Timeframe: "1 quarter", ROI: 1.3,
					Outcome: "The contractor clears the worst bottleneck.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-6000),
							ProductProgress: fptr(4),
						}
					},
				},
			},
		},
		{
			Type:        types.DecisionHiring,
			Title:       "Sales Organization",
			Description: "Revenue growth is limited by founder-led sales.",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Hire a sales lead", Description: "Experienced closer with a book of contacts.",
					Cost: 15000, Timeframe: "1 quarter", ROI: 1.7,
					Outcome: "The sales lead lands deals the founders could not.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-15000),
							Employees: iptr(c.Employees + 1),
							Revenue:   fptr(math.Round(c.Revenue * 1.12)),
						}
					},
				},
				{
					Label: "Commission-only reps", Description: "Low fixed cost, variable output.",
					Cost: 5000, Timeframe: "1 quarter", ROI: 1.4,
					Outcome: "The reps bring in a trickle of new accounts.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-5000),
							Revenue:   fptr(math.Round(c.Revenue * 1.06)),
							Customers: iptr(int(math.Round(float64(c.Customers)*1.08)) + 8),
						}
					},
				},
			},
		},
	},
	types.DecisionProduct: {
		{
			Type:        types.DecisionProduct,
			Title:       "Feature Roadmap",
			Description: "Which product bet gets the next development cycle?",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Flagship feature", Description: "The big differentiator customers keep asking for.",
					Cost: 25000, Timeframe: "2 quarters", ROI: 2.0,
					Outcome: "The flagship feature ships and demos well.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-25000),
							ProductProgress: fptr(12),
						}
					},
				},
				{
					Label: "Quick wins", Description: "A batch of small, visible improvements.",
					Cost: 8000, Timeframe: "1 quarter", ROI: 1.5,
					Outcome: "Small improvements keep existing customers happy.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-8000),
							ProductProgress: fptr(6),
							Customers:       iptr(int(math.Round(float64(c.Customers)*1.05)) + 5),
						}
					},
				},
				{
					Label: "Platform rework", Description: "Pay down the architecture debt.",
					Cost: 35000, Timeframe: "2 quarters", ROI: 1.6,
					Outcome: "The rework hurts now but cuts run costs.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-35000),
							ProductProgress: fptr(15),
							Expenses:        fptr(math.Round(c.Expenses * 0.95)),
						}
					},
				},
			},
		},
		{
			Type:        types.DecisionProduct,
			Title:       "Quality Investment",
			Description: "Support tickets are rising. Time to invest in quality.",
			Urgency:     types.UrgencyLow,
			Options: []optionTemplate{
				{
					Label: "QA automation", Description: "Automated test coverage for the core flows.",
					Cost: 10000, Timeframe: "1 quarter", ROI: 1.5,
					Outcome: "Fewer regressions, cheaper releases.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-10000),
							ProductProgress: fptr(5),
							Expenses:        fptr(math.Round(c.Expenses * 0.97)),
						}
					},
				},
				{
					Label: "Support tooling", Description: "Better triage and self-serve help.",
					Cost: 7000, Timeframe: "1 quarter", ROI: 1.3,
					Outcome: "Happier customers churn less.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-7000),
							Customers: iptr(int(math.Round(float64(c.Customers)*1.07)) + 3),
						}
					},
				},
			},
		},
	},
	types.DecisionFinance: {
		{
			Type:        types.DecisionFinance,
			Title:       "Capital Strategy",
			Description: "Runway needs extending before the next growth phase.",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Raise a bridge round", Description: "Quick insider round at a modest discount.",
					Cost: 5000, Timeframe: "1 quarter", ROI: 1.2,
					Outcome: "The bridge closes and the balance sheet breathes.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(145000),
							Valuation: fptr(math.Round(c.Valuation * 0.95)),
						}
					},
				},
				{
					Label: "Bank credit line", Description: "Secured facility, drawn as needed.",
					Cost: 2000, Timeframe: "1 quarter", ROI: 1.1,
					Outcome: "The credit line adds a cushion at a small carrying cost.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:     fptr(48000),
							Expenses: fptr(math.Round(c.Expenses * 1.02)),
						}
					},
				},
			},
		},
		{
			Type:        types.DecisionFinance,
			Title:       "Cost Discipline",
			Description: "The burn rate is outpacing plan.",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Across-the-board cuts", Description: "Painful but fast.",
					Cost: 0, Timeframe: "1 quarter", ROI: 1.4,
					Outcome: "Costs drop sharply; morale and momentum take a hit.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Expenses:        fptr(math.Round(c.Expenses * 0.85)),
							Employees:       iptr(c.Employees - 2),
							ProductProgress: fptr(-5),
						}
					},
				},
				{
					Label: "Renegotiate vendors", Description: "Slow grind through every contract.",
					Cost: 3000, Timeframe: "2 quarters", ROI: 1.3,
					Outcome: "Vendor terms improve without touching the team.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:     fptr(-3000),
							Expenses: fptr(math.Round(c.Expenses * 0.93)),
						}
					},
				},
			},
		},
	},
	types.DecisionOperations: {
		{
			Type:        types.DecisionOperations,
			Title:       "Process Automation",
			Description: "Manual back-office work is eating the team's week.",
			Urgency:     types.UrgencyLow,
			Options: []optionTemplate{
				{
					Label: "Automate onboarding", Description: "Self-serve signup end to end.",
					Cost: 18000, Timeframe: "1 quarter", ROI: 1.6,
					Outcome: "Onboarding scales without headcount.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-18000),
							Expenses:  fptr(math.Round(c.Expenses * 0.92)),
							Customers: iptr(int(math.Round(float64(c.Customers) * 1.05))),
						}
					},
				},
				{
					Label: "ERP rollout", Description: "One system of record for everything.",
					Cost: 30000, Timeframe: "2 quarters", ROI: 1.5,
					Outcome: "The rollout disrupts a quarter, then pays for itself.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-30000),
							Expenses:        fptr(math.Round(c.Expenses * 0.88)),
							ProductProgress: fptr(-3),
						}
					},
				},
			},
		},
		{
			Type:        types.DecisionOperations,
			Title:       "Infrastructure",
			Description: "The current setup will not survive another doubling.",
			Urgency:     types.UrgencyNormal,
			Options: []optionTemplate{
				{
					Label: "Cloud migration", Description: "Lift, shift, and right-size.",
					Cost: 15000, Timeframe: "1 quarter", ROI: 1.4,
					Outcome: "Hosting costs fall and deploys get easier.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:            fptr(-15000),
							Expenses:        fptr(math.Round(c.Expenses * 0.95)),
							ProductProgress: fptr(3),
						}
					},
				},
				{
					Label: "Office expansion", Description: "Room for the next wave of hires.",
					Cost: 20000, Timeframe: "1 quarter", ROI: 1.2,
					Outcome: "The bigger office fills up fast.",
					Effects: func(c *types.Company) types.StateEffects {
						return types.StateEffects{
							Cash:      fptr(-20000),
							Employees: iptr(c.Employees + 3),
							Expenses:  fptr(math.Round(c.Expenses * 1.08)),
						}
					},
				},
			},
		},
	},
}

// urgentCatalog holds the crisis/opportunity decisions injected with a small
// probability each quarter.
var urgentCatalog = []decisionTemplate{
	{
		Type:        types.DecisionFinance,
		Title:       "Key Client at Risk",
		Description: "Your largest account is threatening to leave for a competitor.",
		Urgency:     types.UrgencyUrgent,
		Options: []optionTemplate{
			{
				Label: "Fly out and renegotiate", Description: "Discounts and a personal visit.",
				Cost: 10000, Timeframe: "1 quarter", ROI: 1.1,
				Outcome: "The client stays at a thinner margin.",
				Effects: func(c *types.Company) types.StateEffects {
					return types.StateEffects{
						Cash:    fptr(-10000),
						Revenue: fptr(math.Round(c.Revenue * 0.97)),
					}
				},
			},
			{
				Label: "Let them churn", Description: "Hold the line on pricing.",
				Cost: 0, Timeframe: "1 quarter", ROI: 0.9,
				Outcome: "The client leaves and takes references with them.",
				Effects: func(c *types.Company) types.StateEffects {
					return types.StateEffects{
						Revenue:   fptr(math.Round(c.Revenue * 0.9)),
						Customers: iptr(int(math.Round(float64(c.Customers) * 0.9))),
					}
				},
			},
		},
	},
	{
		Type:        types.DecisionMarketing,
		Title:       "Partnership Window",
		Description: "A complementary company proposes a co-marketing deal, this quarter only.",
		Urgency:     types.UrgencyUrgent,
		Options: []optionTemplate{
			{
				Label: "Sign the deal", Description: "Shared campaigns, shared leads.",
				Cost: 12000, Timeframe: "1 quarter", ROI: 1.9,
				Outcome: "The partner's audience converts surprisingly well.",
				Effects: func(c *types.Company) types.StateEffects {
					return types.StateEffects{
						Cash:        fptr(-12000),
						Customers:   iptr(int(math.Round(float64(c.Customers)*1.15)) + 30),
						MarketShare: fptr(math.Min(1, c.MarketShare+0.015)),
					}
				},
			},
			{
				Label: "Decline politely", Description: "Keep the focus on the roadmap.",
				Cost: 0, Timeframe: "1 quarter", ROI: 1.0,
				Outcome: "Nothing changes; the window closes.",
				Effects: func(c *types.Company) types.StateEffects {
					return types.StateEffects{}
				},
			},
		},
	},
}

// materializeDecision turns a template into a concrete Decision for the
// company, computing each option's consequence from the current state.
func materializeDecision(c *types.Company, tpl decisionTemplate) *types.Decision {
	d := &types.Decision{
		ID:              uuid.New().String(),
		CompanyID:       c.ID,
		Quarter:         c.CurrentQuarter,
		Year:            c.CurrentYear,
		Type:            tpl.Type,
		Title:           tpl.Title,
		Description:     tpl.Description,
		DeadlineQuarter: c.CurrentQuarter,
		Urgency:         tpl.Urgency,
		CreatedAt:       time.Now(),
	}
	for i, opt := range tpl.Options {
		optionID := fmt.Sprintf("opt_%d", i+1)
		d.Options = append(d.Options, types.DecisionOption{
			ID:          optionID,
			Label:       opt.Label,
			Description: opt.Description,
			Metrics: types.OptionMetrics{
				Cost:      opt.Cost,
				Timeframe: opt.Timeframe,
				ROI:       opt.ROI,
				CAC:       opt.CAC,
			},
		})
		d.Consequences = append(d.Consequences, types.Consequence{
			OptionID:    optionID,
			Effects:     opt.Effects(c),
			Description: opt.Outcome,
		})
	}
	return d
}

var allDecisionTypes = []types.DecisionType{
	types.DecisionMarketing,
	types.DecisionHiring,
	types.DecisionProduct,
	types.DecisionFinance,
	types.DecisionOperations,
}

// generateQuarterDecisions produces the next quarter's decision set: two or
// three randomly selected decision types plus, with a small probability, one
// urgent crisis/opportunity decision.
func generateQuarterDecisions(c *types.Company, rng *Rand, crisisProb float64) []*types.Decision {
	typeOrder := make([]types.DecisionType, len(allDecisionTypes))
	copy(typeOrder, allDecisionTypes)
	rng.Shuffle(len(typeOrder), func(i, j int) {
		typeOrder[i], typeOrder[j] = typeOrder[j], typeOrder[i]
	})

	count := rng.Between(2, 3)
	decisions := make([]*types.Decision, 0, count+1)
	for _, dtype := range typeOrder[:count] {
		templates := decisionCatalog[dtype]
		decisions = append(decisions, materializeDecision(c, templates[rng.Intn(len(templates))]))
	}
	if rng.Chance(crisisProb) {
		decisions = append(decisions, materializeDecision(c, urgentCatalog[rng.Intn(len(urgentCatalog))]))
	}
	return decisions
}

// applyConsequence resolves a single decision option against the company and
// returns the updated copy plus a descriptive event. Effects are applied in
// a fixed field order, always reading the pre-decision state; cash is a
// delta, product progress is added then clamped, customers and employees are
// set with floors, and every other field is an absolute replacement.
func applyConsequence(c *types.Company, d *types.Decision, optionID string) (*types.Company, *types.Event, error) {
	var consequence *types.Consequence
	for i := range d.Consequences {
		if d.Consequences[i].OptionID == optionID {
			consequence = &d.Consequences[i]
			break
		}
	}
	if consequence == nil {
		return nil, nil, ErrInvalidOption
	}

	base := *c
	updated := base
	eff := consequence.Effects
	impact := make(map[string]float64)

	if eff.Cash != nil {
		updated.Cash = base.Cash + *eff.Cash
		impact["cash"] = *eff.Cash
	}
	if eff.Revenue != nil {
		updated.Revenue = *eff.Revenue
		impact["revenue"] = *eff.Revenue - base.Revenue
	}
	if eff.Expenses != nil {
		updated.Expenses = *eff.Expenses
		impact["expenses"] = *eff.Expenses - base.Expenses
	}
	if eff.Customers != nil {
		updated.Customers = *eff.Customers
		if updated.Customers < 0 {
			updated.Customers = 0
		}
		impact["customers"] = float64(updated.Customers - base.Customers)
	}
	if eff.Employees != nil {
		updated.Employees = *eff.Employees
		if updated.Employees < 1 {
			updated.Employees = 1
		}
		impact["employees"] = float64(updated.Employees - base.Employees)
	}
	if eff.Valuation != nil {
		updated.Valuation = *eff.Valuation
		impact["valuation"] = *eff.Valuation - base.Valuation
	}
	if eff.ProductProgress != nil {
		updated.ProductProgress = clamp(base.ProductProgress+*eff.ProductProgress, 0, 100)
		impact["product_progress"] = updated.ProductProgress - base.ProductProgress
	}
	if eff.MarketShare != nil {
		updated.MarketShare = clamp(*eff.MarketShare, 0, 1)
		impact["market_share"] = updated.MarketShare - base.MarketShare
	}
	updated.QuarterlyBurnRate = updated.Expenses / 3

	event := newEvent(&updated, types.EventInternal,
		fmt.Sprintf("Decision: %s", d.Title),
		consequence.Description,
		impact, "check-circle", "blue")

	return &updated, event, nil
}

// bulkDecision is an entry of the quarterly bulk-submission catalog. Unlike
// consequence effects, bulk impacts are multiplicative deltas layered onto
// the running state (field *= 1 + impact[field]).
type bulkDecision struct {
	ID     string
	Type   types.DecisionType
	Title  string
	Cost   float64
	Impact map[string]float64
}

var bulkCatalog = []bulkDecision{
	{ID: "social_campaign", Type: types.DecisionMarketing, Title: "Social Campaign", Cost: 10000,
		Impact: map[string]float64{"customers": 0.15, "market_share": 0.05}},
	{ID: "influencer_partnership", Type: types.DecisionMarketing, Title: "Influencer Partnership", Cost: 25000,
		Impact: map[string]float64{"customers": 0.30, "market_share": 0.08}},
	{ID: "brand_campaign", Type: types.DecisionMarketing, Title: "Brand Campaign", Cost: 40000,
		Impact: map[string]float64{"market_share": 0.12, "revenue": 0.05}},
	{ID: "hire_engineers", Type: types.DecisionHiring, Title: "Hire Engineers", Cost: 20000,
		Impact: map[string]float64{"product_progress": 0.10, "expenses": 0.08, "employees": 0.25}},
	{ID: "hire_sales", Type: types.DecisionHiring, Title: "Hire Sales Team", Cost: 15000,
		Impact: map[string]float64{"revenue": 0.12, "expenses": 0.06, "employees": 0.15}},
	{ID: "feature_development", Type: types.DecisionProduct, Title: "Feature Development", Cost: 18000,
		Impact: map[string]float64{"product_progress": 0.15, "customers": 0.05}},
	{ID: "ux_overhaul", Type: types.DecisionProduct, Title: "UX Overhaul", Cost: 12000,
		Impact: map[string]float64{"product_progress": 0.08, "customers": 0.08}},
	{ID: "cost_optimization", Type: types.DecisionFinance, Title: "Cost Optimization", Cost: 5000,
		Impact: map[string]float64{"expenses": -0.10}},
	{ID: "debt_restructuring", Type: types.DecisionFinance, Title: "Debt Restructuring", Cost: 6000,
		Impact: map[string]float64{"expenses": -0.08}},
	{ID: "process_automation", Type: types.DecisionOperations, Title: "Process Automation", Cost: 15000,
		Impact: map[string]float64{"expenses": -0.12, "product_progress": 0.05}},
	{ID: "supply_chain_upgrade", Type: types.DecisionOperations, Title: "Supply Chain Upgrade", Cost: 20000,
		Impact: map[string]float64{"expenses": -0.07, "revenue": 0.04}},
}

// lookupBulkDecision resolves a {type, id} submission against the bulk
// catalog.
func lookupBulkDecision(dtype types.DecisionType, id string) (bulkDecision, error) {
	if !types.ValidDecisionType(dtype) {
		return bulkDecision{}, fmt.Errorf("%w: %s", ErrUnknownDecisionType, dtype)
	}
	for _, d := range bulkCatalog {
		if d.Type == dtype && d.ID == id {
			return d, nil
		}
	}
	return bulkDecision{}, fmt.Errorf("%w: %s/%s", ErrInvalidOption, dtype, id)
}

// applyBulkImpact layers one bulk decision's multiplicative deltas onto the
// running company state. Bounded fields are clamped afterwards.
func applyBulkImpact(c *types.Company, impact map[string]float64) {
	for field, v := range impact {
		switch field {
		case "revenue":
			c.Revenue = math.Round(c.Revenue * (1 + v))
		case "expenses":
			c.Expenses = math.Round(c.Expenses * (1 + v))
		case "customers":
			c.Customers = int(math.Round(float64(c.Customers) * (1 + v)))
			if c.Customers < 0 {
				c.Customers = 0
			}
		case "employees":
			c.Employees = int(math.Round(float64(c.Employees) * (1 + v)))
			if c.Employees < 1 {
				c.Employees = 1
			}
		case "market_share":
			c.MarketShare = clamp(c.MarketShare*(1+v), 0, 1)
		case "product_progress":
			c.ProductProgress = clamp(c.ProductProgress*(1+v), 0, 100)
		}
	}
}

// bulkValuation is the valuation override recomputed after all bulk
// decisions of a submission are applied.
func bulkValuation(c *types.Company) float64 {
	return math.Round((c.Revenue * 12) * (1 + c.MarketShare/10))
}
