package types

import "time"

// BusinessType categorizes a company and drives its revenue and valuation
// multipliers.
type BusinessType string

const (
	BusinessTech          BusinessType = "tech"
	BusinessEcommerce     BusinessType = "ecommerce"
	BusinessService       BusinessType = "service"
	BusinessManufacturing BusinessType = "manufacturing"
)

// FundingType determines the company's initial capital.
type FundingType string

const (
	FundingBootstrap   FundingType = "bootstrap"
	FundingSeed        FundingType = "seed"
	FundingSeriesA     FundingType = "series_a"
	FundingBankLoan    FundingType = "bank_loan"
	FundingPartnership FundingType = "partnership"
)

// DecisionType categorizes strategic decisions offered to the player.
type DecisionType string

const (
	DecisionMarketing  DecisionType = "marketing"
	DecisionHiring     DecisionType = "hiring"
	DecisionProduct    DecisionType = "product"
	DecisionFinance    DecisionType = "finance"
	DecisionOperations DecisionType = "operations"
)

// EventType categorizes notable events recorded during quarter transitions.
type EventType string

const (
	EventMarket     EventType = "market"
	EventInternal   EventType = "internal"
	EventCompetitor EventType = "competitor"
	EventCrisis     EventType = "crisis"
)

// AdviceType categorizes advisory messages.
type AdviceType string

const (
	AdviceFinancial AdviceType = "financial"
	AdviceMarketing AdviceType = "marketing"
	AdviceProduct   AdviceType = "product"
	AdviceHR        AdviceType = "hr"
	AdviceGeneral   AdviceType = "general"
)

// Urgency levels for decisions.
const (
	UrgencyUrgent = "urgent"
	UrgencyNormal = "normal"
	UrgencyLow    = "low"
)

// Company is the central mutable record representing a simulated startup.
// It is advanced once per quarter and mutated when decisions are resolved.
type Company struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Name      string       `json:"name"`
	Type      BusinessType `json:"type"`
	Funding   FundingType  `json:"funding"`
	CreatedAt time.Time    `json:"created_at"`

	// Time: quarter wraps 4 -> 1 with year+1.
	CurrentQuarter int `json:"current_quarter"`
	CurrentYear    int `json:"current_year"`

	// Financial. Cash may go negative to signal a crisis.
	Cash              float64 `json:"cash"`
	Revenue           float64 `json:"revenue"`
	Expenses          float64 `json:"expenses"`
	Valuation         float64 `json:"valuation"`
	InitialCapital    float64 `json:"initial_capital"`
	QuarterlyBurnRate float64 `json:"quarterly_burn_rate"`

	// Growth. ProductProgress is clamped to [0,100], MarketShare to [0,1].
	Employees       int     `json:"employees"`
	Customers       int     `json:"customers"`
	ProductProgress float64 `json:"product_progress"`
	MarketShare     float64 `json:"market_share"`

	// AutoManaged companies are driven by the auto-advance system.
	AutoManaged bool `json:"auto_managed"`
}

// Competitor shares the zero-sum market-share pool with its owning company.
type Competitor struct {
	ID          string       `json:"id"`
	CompanyID   string       `json:"company_id"`
	Name        string       `json:"name"`
	Type        BusinessType `json:"type"`
	MarketShare float64      `json:"market_share"`
	Strength    int          `json:"strength"` // 1-10
	Focus       string       `json:"focus"`
}

// OptionMetrics carries the headline numbers shown for a decision option.
type OptionMetrics struct {
	Cost      float64 `json:"cost"`
	Timeframe string  `json:"timeframe"`
	ROI       float64 `json:"roi"`
	CAC       float64 `json:"cac,omitempty"`
}

// DecisionOption is one selectable choice within a decision.
type DecisionOption struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Metrics     OptionMetrics `json:"metrics"`
}

// StateEffects is a partial-state delta attached to a decision consequence.
// Nil fields are untouched. Cash is always additive; ProductProgress is
// added then clamped; Customers and Employees are set with a floor of 0 and
// 1 respectively; every other field is an absolute replacement.
type StateEffects struct {
	Cash            *float64 `json:"cash,omitempty"`
	Revenue         *float64 `json:"revenue,omitempty"`
	Expenses        *float64 `json:"expenses,omitempty"`
	Customers       *int     `json:"customers,omitempty"`
	Employees       *int     `json:"employees,omitempty"`
	Valuation       *float64 `json:"valuation,omitempty"`
	ProductProgress *float64 `json:"product_progress,omitempty"`
	MarketShare     *float64 `json:"market_share,omitempty"`
}

// Consequence binds an option to the effects applied when it is chosen.
type Consequence struct {
	OptionID    string       `json:"option_id"`
	Effects     StateEffects `json:"effects"`
	Description string       `json:"description"`
}

// Decision is a strategic choice offered to the player for a quarter.
type Decision struct {
	ID              string           `json:"id"`
	CompanyID       string           `json:"company_id"`
	Quarter         int              `json:"quarter"`
	Year            int              `json:"year"`
	Type            DecisionType     `json:"type"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Options         []DecisionOption `json:"options"`
	Consequences    []Consequence    `json:"consequences"`
	DeadlineQuarter int              `json:"deadline_quarter"`
	Urgency         string           `json:"urgency"`
	IsCompleted     bool             `json:"is_completed"`
	CreatedAt       time.Time        `json:"created_at"`
}

// FinancialRecord is an immutable per-quarter snapshot. The cost columns are
// a fixed proportional breakdown of expenses (30/40/10/15/5%).
type FinancialRecord struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	Quarter         int     `json:"quarter"`
	Year            int     `json:"year"`
	Revenue         float64 `json:"revenue"`
	Expenses        float64 `json:"expenses"`
	Profit          float64 `json:"profit"`
	Cash            float64 `json:"cash"`
	MarketingCost   float64 `json:"marketing_cost"`
	DevelopmentCost float64 `json:"development_cost"`
	OperationsCost  float64 `json:"operations_cost"`
	HRCost          float64 `json:"hr_cost"`
	OtherCosts      float64 `json:"other_costs"`
	Valuation       float64 `json:"valuation"`
	Customers       int     `json:"customers"`
}

// Event records something notable that happened during a quarter transition
// or a decision resolution. Impact is informational: the numbers driving
// state changes are applied by the stat rules and decision resolvers.
type Event struct {
	ID          string             `json:"id"`
	CompanyID   string             `json:"company_id"`
	Quarter     int                `json:"quarter"`
	Year        int                `json:"year"`
	Type        EventType          `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Impact      map[string]float64 `json:"impact,omitempty"`
	Resolved    bool               `json:"resolved"`
	Icon        string             `json:"icon,omitempty"`
	IconColor   string             `json:"icon_color,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// AdviceItem is a category-tagged piece of strategic feedback.
type AdviceItem struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Type      AdviceType `json:"type"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	RelatedTo string     `json:"related_to"`
	Quarter   int        `json:"quarter"`
	Year      int        `json:"year"`
}

// SimState is the aggregate persisted by the simulation manager. All slices
// keyed by company id are append-only histories except Decisions, whose
// entries flip IsCompleted when resolved.
type SimState struct {
	Companies   map[string]*Company           `json:"companies"`
	Competitors map[string][]*Competitor      `json:"competitors"`
	Decisions   map[string][]*Decision        `json:"decisions"`
	Records     map[string][]*FinancialRecord `json:"records"`
	Events      map[string][]*Event           `json:"events"`
	Advice      map[string][]*AdviceItem      `json:"advice"`
}

// ValidBusinessType reports whether t is one of the enumerated types.
func ValidBusinessType(t BusinessType) bool {
	switch t {
	case BusinessTech, BusinessEcommerce, BusinessService, BusinessManufacturing:
		return true
	}
	return false
}

// ValidFundingType reports whether f is one of the enumerated funding types.
func ValidFundingType(f FundingType) bool {
	switch f {
	case FundingBootstrap, FundingSeed, FundingSeriesA, FundingBankLoan, FundingPartnership:
		return true
	}
	return false
}

// ValidDecisionType reports whether d is one of the enumerated decision types.
func ValidDecisionType(d DecisionType) bool {
	switch d {
	case DecisionMarketing, DecisionHiring, DecisionProduct, DecisionFinance, DecisionOperations:
		return true
	}
	return false
}
