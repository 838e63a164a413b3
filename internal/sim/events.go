package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/user/startup-sim/internal/types"
)

// quarterSnapshot captures the fields the event rules compare across a
// transition.
type quarterSnapshot struct {
	Revenue         float64
	Customers       int
	MarketShare     float64
	ProductProgress float64
}

func snapshotOf(c *types.Company) quarterSnapshot {
	return quarterSnapshot{
		Revenue:         c.Revenue,
		Customers:       c.Customers,
		MarketShare:     c.MarketShare,
		ProductProgress: c.ProductProgress,
	}
}

var progressMilestones = []float64{25, 50, 75, 100}

// marketEventTemplate describes a random market shock. The impact value is
// informational: it is recorded on the event, not applied to company state.
type marketEventTemplate struct {
	Type        types.EventType
	Title       string
	Description string
	ImpactField string
	ImpactValue float64
	Icon        string
	IconColor   string
}

var marketEventCatalog = []marketEventTemplate{
	{
		Type:        types.EventMarket,
		Title:       "Market Expansion",
		Description: "Analysts report the overall market is growing faster than expected.",
		ImpactField: "market_growth",
		ImpactValue: 0.05,
		Icon:        "trending-up",
		IconColor:   "green",
	},
	{
		Type:        types.EventCompetitor,
		Title:       "Competitor Price Drop",
		Description: "A major competitor slashed prices to win market share.",
		ImpactField: "price_pressure",
		ImpactValue: -0.05,
		Icon:        "trending-down",
		IconColor:   "red",
	},
	{
		Type:        types.EventCrisis,
		Title:       "New Regulation",
		Description: "A new compliance regime raises the cost of doing business.",
		ImpactField: "compliance_cost",
		ImpactValue: -0.03,
		Icon:        "scale",
		IconColor:   "orange",
	},
	{
		Type:        types.EventCrisis,
		Title:       "Supply Disruption",
		Description: "A key supplier failed to deliver, disrupting operations.",
		ImpactField: "supply_cost",
		ImpactValue: -0.04,
		Icon:        "alert-triangle",
		IconColor:   "red",
	},
}

func newEvent(c *types.Company, etype types.EventType, title, description string, impact map[string]float64, icon, color string) *types.Event {
	return &types.Event{
		ID:          uuid.New().String(),
		CompanyID:   c.ID,
		Quarter:     c.CurrentQuarter,
		Year:        c.CurrentYear,
		Type:        etype,
		Title:       title,
		Description: description,
		Impact:      impact,
		Icon:        icon,
		IconColor:   color,
		CreatedAt:   time.Now(),
	}
}

// evaluateQuarterEvents compares the pre and post transition snapshots and
// emits every milestone event that fired, plus an occasional random market
// event. Emitted events are side-channel records: they never mutate state.
func evaluateQuarterEvents(c *types.Company, pre, post quarterSnapshot, rng *Rand, randomEventProb float64) []*types.Event {
	var events []*types.Event

	// Revenue trend, mutually exclusive by construction.
	switch {
	case post.Revenue > pre.Revenue*1.2:
		events = append(events, newEvent(c, types.EventInternal,
			"Revenue Surge",
			fmt.Sprintf("Revenue jumped more than 20%% this quarter, from %.0f to %.0f.", pre.Revenue, post.Revenue),
			map[string]float64{"revenue": post.Revenue - pre.Revenue},
			"trending-up", "green"))
	case post.Revenue < pre.Revenue*0.8:
		events = append(events, newEvent(c, types.EventCrisis,
			"Revenue Decline",
			fmt.Sprintf("Revenue dropped more than 20%% this quarter, from %.0f to %.0f.", pre.Revenue, post.Revenue),
			map[string]float64{"revenue": post.Revenue - pre.Revenue},
			"trending-down", "red"))
	}

	if pre.Customers < 100 && post.Customers >= 100 {
		events = append(events, newEvent(c, types.EventInternal,
			"100 Customers",
			"The customer base crossed one hundred for the first time.",
			map[string]float64{"customers": float64(post.Customers)},
			"users", "blue"))
	}

	if pre.MarketShare < 0.10 && post.MarketShare >= 0.10 {
		events = append(events, newEvent(c, types.EventMarket,
			"Double-Digit Market Share",
			"Market share crossed the 10% mark.",
			map[string]float64{"market_share": post.MarketShare},
			"pie-chart", "blue"))
	}

	for _, milestone := range progressMilestones {
		if pre.ProductProgress < milestone && post.ProductProgress >= milestone {
			events = append(events, newEvent(c, types.EventInternal,
				fmt.Sprintf("Product Milestone: %.0f%%", milestone),
				fmt.Sprintf("Product development reached %.0f%% completion.", milestone),
				map[string]float64{"product_progress": milestone},
				"flag", "purple"))
		}
	}

	if rng.Chance(randomEventProb) {
		tpl := marketEventCatalog[rng.Intn(len(marketEventCatalog))]
		events = append(events, newEvent(c, tpl.Type, tpl.Title, tpl.Description,
			map[string]float64{tpl.ImpactField: tpl.ImpactValue},
			tpl.Icon, tpl.IconColor))
	}

	return events
}
