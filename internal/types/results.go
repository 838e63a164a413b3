package types

// AdvanceResult bundles everything one quarter transition produces.
type AdvanceResult struct {
	Company     *Company         `json:"company"`
	Record      *FinancialRecord `json:"record"`
	Events      []*Event         `json:"events"`
	Decisions   []*Decision      `json:"decisions"`
	Advice      []*AdviceItem    `json:"advice"`
	Competitors []*Competitor    `json:"competitors"`
}

// DecisionSubmission references one bulk-catalog decision by type and id.
type DecisionSubmission struct {
	Type       DecisionType `json:"type"`
	DecisionID string       `json:"decision_id"`
}

// BulkSubmitResult is the outcome of a quarterly bulk decision submission.
type BulkSubmitResult struct {
	Company     *Company `json:"company"`
	Applied     []string `json:"applied"`
	TotalCost   float64  `json:"total_cost"`
	NextQuarter int      `json:"next_quarter"`
	NextYear    int      `json:"next_year"`
}
