package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/startup-sim/config"
	"github.com/user/startup-sim/internal/interfaces"
	"github.com/user/startup-sim/internal/metrics"
	"github.com/user/startup-sim/internal/types"
	"go.uber.org/zap"
)

// Manager owns the simulation state and serializes all operations on it.
// Concurrent requests for the same company are serialized by the state lock;
// the transition math itself is single-threaded and synchronous.
type Manager struct {
	state     *types.SimState
	stateLock sync.RWMutex
	storage   *StateStorage
	cfg       config.Config
	Logger    *zap.Logger
	rng       *Rand
}

// Ensure Manager satisfies the interfaces.SimulationManager interface
var _ interfaces.SimulationManager = (*Manager)(nil)

// NewManager creates a new simulation manager
func NewManager(cfg config.Config) *Manager {
	// Create storage
	storage := NewStateStorage(cfg.Storage.StatePath)

	// Try to load existing state
	state, err := storage.LoadState()
	if err != nil {
		// If there's an error loading, start from an empty state
		state = emptyState()
	}

	m := &Manager{
		state:   state,
		storage: storage,
		cfg:     cfg,
		Logger:  zap.NewNop(), // Will be set by the server
		rng:     NewTimeRand(),
	}
	metrics.CompaniesActive.Set(float64(len(state.Companies)))
	return m
}

// SetLogger sets the manager's logger
func (m *Manager) SetLogger(logger *zap.Logger) {
	m.Logger = logger
}

// SetRand replaces the randomness source. Tests inject a seeded source to
// make quarter transitions deterministic.
func (m *Manager) SetRand(rng *Rand) {
	m.rng = rng
}

// saveState persists the current simulation state
func (m *Manager) saveState() error {
	return m.storage.SaveState(m.state)
}

// initialCapitalFor returns the starting capital granted by a funding type.
func initialCapitalFor(f types.FundingType) float64 {
	switch f {
	case types.FundingBootstrap:
		return 50000
	case types.FundingSeed:
		return 250000
	case types.FundingSeriesA:
		return 1000000
	case types.FundingBankLoan:
		return 150000
	case types.FundingPartnership:
		return 500000
	default:
		return 50000
	}
}

// baselineEmployees returns the starting headcount for a business type.
func baselineEmployees(t types.BusinessType) int {
	switch t {
	case types.BusinessTech:
		return 5
	case types.BusinessEcommerce:
		return 4
	case types.BusinessService:
		return 3
	case types.BusinessManufacturing:
		return 8
	default:
		return 3
	}
}

// Starting market share for a brand-new company: half a percent.
const initialMarketShare = 0.005

// CreateCompany registers a new company with type-specific baseline metrics,
// generates its competitor set and its first batch of decisions.
func (m *Manager) CreateCompany(userID, name string, btype types.BusinessType, ftype types.FundingType) (*types.Company, error) {
	if !types.ValidBusinessType(btype) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBusinessType, btype)
	}
	if !types.ValidFundingType(ftype) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFundingType, ftype)
	}

	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	// Reject a duplicate company name for the same user
	for _, existing := range m.state.Companies {
		if existing.UserID == userID && existing.Name == name {
			return nil, ErrCompanyExists
		}
	}

	capital := initialCapitalFor(ftype)
	company := &types.Company{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           name,
		Type:           btype,
		Funding:        ftype,
		CreatedAt:      time.Now(),
		CurrentQuarter: 1,
		CurrentYear:    1,
		Cash:           capital,
		InitialCapital: capital,
		Valuation:      capital * 2,
		Employees:      baselineEmployees(btype),
		MarketShare:    initialMarketShare,
	}
	company.Expenses = quarterlyExpenses(company, 0)
	company.QuarterlyBurnRate = company.Expenses / 3

	competitors := generateCompetitors(company, m.rng, m.cfg.Game.MinCompetitors, m.cfg.Game.MaxCompetitors)
	decisions := generateQuarterDecisions(company, m.rng, m.cfg.Game.CrisisDecisionProbability)

	m.state.Companies[company.ID] = company
	m.state.Competitors[company.ID] = competitors
	m.state.Decisions[company.ID] = decisions

	if err := m.saveState(); err != nil {
		delete(m.state.Companies, company.ID)
		delete(m.state.Competitors, company.ID)
		delete(m.state.Decisions, company.ID)
		return nil, fmt.Errorf("failed to save simulation state: %w", err)
	}

	metrics.CompaniesActive.Set(float64(len(m.state.Companies)))
	m.Logger.Info("Company created",
		zap.String("company_id", company.ID),
		zap.String("name", name),
		zap.String("type", string(btype)),
		zap.String("funding", string(ftype)),
		zap.Float64("initial_capital", capital),
		zap.Int("competitors", len(competitors)))

	return company, nil
}

// AdvanceQuarter runs one full quarter transition for a company and persists
// every record it produced. The transition is computed on copies; nothing is
// written back unless the whole advance succeeds.
func (m *Manager) AdvanceQuarter(companyID string) (*types.AdvanceResult, error) {
	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	company, exists := m.state.Companies[companyID]
	if !exists {
		return nil, ErrCompanyNotFound
	}

	result := advanceQuarter(company, m.state.Competitors[companyID], m.cfg.Game, m.rng)

	m.state.Companies[companyID] = result.Company
	m.state.Competitors[companyID] = result.Competitors
	m.state.Records[companyID] = append(m.state.Records[companyID], result.Record)
	m.state.Events[companyID] = append(m.state.Events[companyID], result.Events...)
	m.state.Decisions[companyID] = append(m.state.Decisions[companyID], result.Decisions...)
	m.state.Advice[companyID] = append(m.state.Advice[companyID], result.Advice...)

	if err := m.saveState(); err != nil {
		return nil, fmt.Errorf("failed to save simulation state: %w", err)
	}

	metrics.QuartersAdvanced.Inc()
	for _, ev := range result.Events {
		metrics.EventsEmitted.WithLabelValues(string(ev.Type)).Inc()
	}
	if result.Company.Cash < 0 {
		m.Logger.Warn("Company cash is negative",
			zap.String("company_id", companyID),
			zap.Float64("cash", result.Company.Cash))
	}
	m.Logger.Info("Quarter advanced",
		zap.String("company_id", companyID),
		zap.Int("quarter", result.Company.CurrentQuarter),
		zap.Int("year", result.Company.CurrentYear),
		zap.Float64("revenue", result.Company.Revenue),
		zap.Float64("cash", result.Company.Cash),
		zap.Int("events", len(result.Events)),
		zap.Int("decisions", len(result.Decisions)))

	return result, nil
}

// SubmitDecisions applies a batch of bulk-catalog decisions for the current
// quarter: total cost is deducted from cash first, then each decision's
// multiplicative impact is layered on, valuation is recomputed, and the
// quarter counter rolls. The whole batch is validated before any mutation.
func (m *Manager) SubmitDecisions(companyID string, subs []types.DecisionSubmission) (*types.BulkSubmitResult, error) {
	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	company, exists := m.state.Companies[companyID]
	if !exists {
		return nil, ErrCompanyNotFound
	}

	// Resolve every submission up front so an invalid entry leaves the
	// company untouched.
	resolved := make([]bulkDecision, 0, len(subs))
	for _, sub := range subs {
		d, err := lookupBulkDecision(sub.Type, sub.DecisionID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, d)
	}

	updated := *company
	totalCost := 0.0
	for _, d := range resolved {
		totalCost += d.Cost
	}
	updated.Cash -= totalCost

	applied := make([]string, 0, len(resolved))
	for _, d := range resolved {
		applyBulkImpact(&updated, d.Impact)
		applied = append(applied, d.ID)
	}

	// Valuation is recomputed from the post-decision state, overriding any
	// per-decision effect.
	updated.Valuation = bulkValuation(&updated)
	updated.QuarterlyBurnRate = updated.Expenses / 3
	updated.CurrentQuarter, updated.CurrentYear = nextQuarter(company.CurrentQuarter, company.CurrentYear)

	m.state.Companies[companyID] = &updated
	if err := m.saveState(); err != nil {
		m.state.Companies[companyID] = company
		return nil, fmt.Errorf("failed to save simulation state: %w", err)
	}

	metrics.DecisionsResolved.WithLabelValues("bulk").Add(float64(len(resolved)))
	m.Logger.Info("Decisions submitted",
		zap.String("company_id", companyID),
		zap.Int("count", len(resolved)),
		zap.Float64("total_cost", totalCost),
		zap.Int("next_quarter", updated.CurrentQuarter),
		zap.Int("next_year", updated.CurrentYear))

	return &types.BulkSubmitResult{
		Company:     &updated,
		Applied:     applied,
		TotalCost:   totalCost,
		NextQuarter: updated.CurrentQuarter,
		NextYear:    updated.CurrentYear,
	}, nil
}

// ResolveDecision applies the consequence of one pending decision's chosen
// option. The decision is marked completed and a descriptive event is
// recorded. An unknown option id fails without mutating anything.
func (m *Manager) ResolveDecision(companyID, decisionID, optionID string) (*types.Company, *types.Event, error) {
	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	company, exists := m.state.Companies[companyID]
	if !exists {
		return nil, nil, ErrCompanyNotFound
	}

	var decision *types.Decision
	for _, d := range m.state.Decisions[companyID] {
		if d.ID == decisionID {
			decision = d
			break
		}
	}
	if decision == nil {
		return nil, nil, ErrDecisionNotFound
	}
	if decision.IsCompleted {
		return nil, nil, ErrDecisionCompleted
	}

	updated, event, err := applyConsequence(company, decision, optionID)
	if err != nil {
		return nil, nil, err
	}

	decision.IsCompleted = true
	m.state.Companies[companyID] = updated
	m.state.Events[companyID] = append(m.state.Events[companyID], event)

	if err := m.saveState(); err != nil {
		return nil, nil, fmt.Errorf("failed to save simulation state: %w", err)
	}

	metrics.DecisionsResolved.WithLabelValues("single").Inc()
	m.Logger.Info("Decision resolved",
		zap.String("company_id", companyID),
		zap.String("decision_id", decisionID),
		zap.String("option_id", optionID),
		zap.String("title", decision.Title))

	return updated, event, nil
}

// ResolveEvent marks an event as resolved
func (m *Manager) ResolveEvent(companyID, eventID string) (*types.Event, error) {
	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	for _, ev := range m.state.Events[companyID] {
		if ev.ID == eventID {
			ev.Resolved = true
			if err := m.saveState(); err != nil {
				return nil, fmt.Errorf("failed to save simulation state: %w", err)
			}
			return ev, nil
		}
	}
	return nil, ErrEventNotFound
}

// SetAutoManaged flags a company for the auto-advance system.
func (m *Manager) SetAutoManaged(companyID string, auto bool) error {
	m.stateLock.Lock()
	defer m.stateLock.Unlock()

	company, exists := m.state.Companies[companyID]
	if !exists {
		return ErrCompanyNotFound
	}
	company.AutoManaged = auto
	if err := m.saveState(); err != nil {
		return fmt.Errorf("failed to save simulation state: %w", err)
	}
	return nil
}

// GetCompany retrieves a company by id
func (m *Manager) GetCompany(companyID string) (*types.Company, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	company, exists := m.state.Companies[companyID]
	if !exists {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// AllCompanies returns all companies in the simulation
func (m *Manager) AllCompanies() []*types.Company {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	companies := make([]*types.Company, 0, len(m.state.Companies))
	for _, c := range m.state.Companies {
		companies = append(companies, c)
	}
	return companies
}

// CompetitorsOf returns a company's competitor set
func (m *Manager) CompetitorsOf(companyID string) ([]*types.Competitor, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	return m.state.Competitors[companyID], nil
}

// FinancialRecordsOf returns a company's financial history
func (m *Manager) FinancialRecordsOf(companyID string) ([]*types.FinancialRecord, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	return m.state.Records[companyID], nil
}

// EventsOf returns a company's event feed
func (m *Manager) EventsOf(companyID string) ([]*types.Event, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	return m.state.Events[companyID], nil
}

// DecisionsOf returns a company's decision list
func (m *Manager) DecisionsOf(companyID string) ([]*types.Decision, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	return m.state.Decisions[companyID], nil
}

// PendingDecisionsOf returns a company's unresolved decisions
func (m *Manager) PendingDecisionsOf(companyID string) ([]*types.Decision, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	pending := make([]*types.Decision, 0)
	for _, d := range m.state.Decisions[companyID] {
		if !d.IsCompleted {
			pending = append(pending, d)
		}
	}
	return pending, nil
}

// AdviceOf returns a company's advice feed
func (m *Manager) AdviceOf(companyID string) ([]*types.AdviceItem, error) {
	m.stateLock.RLock()
	defer m.stateLock.RUnlock()

	if _, exists := m.state.Companies[companyID]; !exists {
		return nil, ErrCompanyNotFound
	}
	return m.state.Advice[companyID], nil
}
