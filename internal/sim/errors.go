package sim

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrDecisionNotFound    = errors.New("decision not found")
	ErrDecisionCompleted   = errors.New("decision already completed")
	ErrEventNotFound       = errors.New("event not found")
	ErrInvalidOption       = errors.New("decision option not found")
	ErrUnknownDecisionType = errors.New("unknown decision type")
	ErrInvalidBusinessType = errors.New("invalid business type")
	ErrInvalidFundingType  = errors.New("invalid funding type")
	ErrCompanyExists       = errors.New("company already registered")
)
