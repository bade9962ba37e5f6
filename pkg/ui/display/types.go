// Package display defines the results commands hand to renderers.
package display

import (
	"fmt"

	"github.com/arthur-debert/linkmirror/pkg/mirror"
	"github.com/arthur-debert/linkmirror/pkg/rules"
	"github.com/arthur-debert/linkmirror/pkg/types"
)

// StatusResult is the outcome of a refresh
type StatusResult struct {
	SourceRoot string                `json:"source"`
	TargetRoot string                `json:"target"`
	Platform   string                `json:"platform"`
	Pairs      []types.EvaluatedPair `json:"pairs"`

	// SetupProblem explains why apply would be refused, if it would
	SetupProblem string `json:"setup_problem,omitempty"`
}

// Counts tallies pairs per indicator
func (s *StatusResult) Counts() (matched, mismatched, pending int) {
	for _, p := range s.Pairs {
		switch p.State.Indicator {
		case types.IndicatorMatch:
			matched++
		case types.IndicatorMismatch:
			mismatched++
		default:
			if p.Pair.NeedsLink() {
				pending++
			}
		}
	}
	return matched, mismatched, pending
}

// ApplyResult is the outcome of an apply run
type ApplyResult struct {
	Status  StatusResult         `json:"status"`
	Results []mirror.ApplyResult `json:"results"`
}

// RulesResult lists a rule set
type RulesResult struct {
	Path       string           `json:"path"`
	SourceRoot string           `json:"source"`
	Selected   string           `json:"selected,omitempty"`
	Platforms  []rules.Platform `json:"platforms"`
}

// Summary is the one line tally shown under a status table
func (s *StatusResult) Summary() string {
	matched, mismatched, pending := s.Counts()
	return fmt.Sprintf("%d linked, %d mismatched, %d to create", matched, mismatched, pending)
}

// Summary is the one line tally shown after an apply run
func (a *ApplyResult) Summary() string {
	counts := map[mirror.Outcome]int{}
	for _, r := range a.Results {
		counts[r.Outcome]++
	}
	return fmt.Sprintf("%d created, %d skipped, %d not created, %d failed",
		counts[mirror.OutcomeCreated], counts[mirror.OutcomeSkipped],
		counts[mirror.OutcomeNotCreated], counts[mirror.OutcomeFailed])
}
