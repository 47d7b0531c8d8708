package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAnalyzerDisabled  = errors.New("ai analyzer not configured")
)
