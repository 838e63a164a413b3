package interfaces

import "github.com/user/startup-sim/internal/types"

// SimulationManager defines the interface for simulation operations
type SimulationManager interface {
	CreateCompany(userID, name string, btype types.BusinessType, ftype types.FundingType) (*types.Company, error)
	AdvanceQuarter(companyID string) (*types.AdvanceResult, error)
	SubmitDecisions(companyID string, subs []types.DecisionSubmission) (*types.BulkSubmitResult, error)
	ResolveDecision(companyID, decisionID, optionID string) (*types.Company, *types.Event, error)
	ResolveEvent(companyID, eventID string) (*types.Event, error)
	SetAutoManaged(companyID string, auto bool) error
	GetCompany(companyID string) (*types.Company, error)
	AllCompanies() []*types.Company
	CompetitorsOf(companyID string) ([]*types.Competitor, error)
	FinancialRecordsOf(companyID string) ([]*types.FinancialRecord, error)
	EventsOf(companyID string) ([]*types.Event, error)
	DecisionsOf(companyID string) ([]*types.Decision, error)
	PendingDecisionsOf(companyID string) ([]*types.Decision, error)
	AdviceOf(companyID string) ([]*types.AdviceItem, error)
}
