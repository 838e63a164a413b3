package sim

import (
	"time"

	"github.com/user/startup-sim/internal/types"
	"go.uber.org/zap"
)

// AutoAdvanceSystem periodically plays auto-managed companies: pending
// decisions are resolved by the option chooser, then the quarter advances.
type AutoAdvanceSystem struct {
	manager  *Manager
	chooser  *OptionChooser
	ticker   *time.Ticker
	stopChan chan struct{}
}

// NewAutoAdvanceSystem creates a new auto-advance system
func NewAutoAdvanceSystem(manager *Manager, interval time.Duration) *AutoAdvanceSystem {
	return &AutoAdvanceSystem{
		manager:  manager,
		chooser:  NewOptionChooser(NewTimeRand()),
		ticker:   time.NewTicker(interval),
		stopChan: make(chan struct{}),
	}
}

// Start begins the auto-advance loop
func (aas *AutoAdvanceSystem) Start() {
	go func() {
		for {
			select {
			case <-aas.ticker.C:
				aas.advanceAutoManaged()
			case <-aas.stopChan:
				aas.ticker.Stop()
				return
			}
		}
	}()
}

// Stop halts the auto-advance loop
func (aas *AutoAdvanceSystem) Stop() {
	close(aas.stopChan)
}

// advanceAutoManaged resolves pending decisions and advances the quarter for
// every auto-managed company.
func (aas *AutoAdvanceSystem) advanceAutoManaged() {
	for _, company := range aas.manager.AllCompanies() {
		if !company.AutoManaged {
			continue
		}

		pending, err := aas.manager.PendingDecisionsOf(company.ID)
		if err != nil {
			continue
		}
		for _, decision := range pending {
			option := aas.chooser.ChooseOption(company, decision)
			if option == nil {
				continue
			}
			if _, _, err := aas.manager.ResolveDecision(company.ID, decision.ID, option.ID); err != nil {
				aas.manager.Logger.Error("Auto-resolve failed",
					zap.String("company_id", company.ID),
					zap.String("decision_id", decision.ID),
					zap.Error(err))
			}
		}

		if _, err := aas.manager.AdvanceQuarter(company.ID); err != nil {
			aas.manager.Logger.Error("Auto-advance failed",
				zap.String("company_id", company.ID),
				zap.Error(err))
		}
	}
}

// OptionChooser picks decision options for auto-managed companies based on
// cost pressure and expected return.
type OptionChooser struct {
	rng *Rand
}

// NewOptionChooser creates a new option chooser
func NewOptionChooser(rng *Rand) *OptionChooser {
	return &OptionChooser{rng: rng}
}

// ChooseOption selects an option for a decision. Cash-strapped companies
// favor cheap options; otherwise the best ROI wins, with some randomness so
// auto-managed companies do not all play identically.
func (oc *OptionChooser) ChooseOption(c *types.Company, d *types.Decision) *types.DecisionOption {
	if len(d.Options) == 0 {
		return nil
	}

	type optionScore struct {
		option *types.DecisionOption
		score  float64
	}

	cashTight := c.Cash < c.QuarterlyBurnRate*6

	var scores []optionScore
	for i := range d.Options {
		option := &d.Options[i]
		score := option.Metrics.ROI * 10
		if cashTight && option.Metrics.Cost > 0 {
			score -= option.Metrics.Cost / 1000
		}
		score += float64(oc.rng.Intn(10))
		scores = append(scores, optionScore{option: option, score: score})
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.score > best.score {
			best = s
		}
	}
	return best.option
}
