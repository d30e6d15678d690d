package domain

import (
	"time"

	"github.com/google/uuid"
)

type OutcomeKind string

const (
	// OutcomeUnscored: no result yet and the match date has not passed.
	OutcomeUnscored OutcomeKind = "unscored"
	// OutcomeUnknown: the match date has passed but no result was recorded.
	OutcomeUnknown OutcomeKind = "unknown"
	OutcomeDraw    OutcomeKind = "draw"
	OutcomeWinner  OutcomeKind = "winner"
)

type Outcome struct {
	Kind     OutcomeKind `json:"kind"`
	WinnerID *uuid.UUID  `json:"winner_id,omitempty"`
}

// DeriveOutcome is the single source of truth for "who won". It is total over
// every valid match state and symmetric under swapping the two teams. The
// tie-break is plain numeric comparison of maps won, nothing else.
func DeriveOutcome(m *Match, now time.Time) Outcome {
	if !m.Scored() {
		if m.Date.Before(now) {
			return Outcome{Kind: OutcomeUnknown}
		}
		return Outcome{Kind: OutcomeUnscored}
	}

	a, b := *m.TeamAMapsWon, *m.TeamBMapsWon
	switch {
	case a == b:
		return Outcome{Kind: OutcomeDraw}
	case a > b:
		winner := m.TeamAID
		return Outcome{Kind: OutcomeWinner, WinnerID: &winner}
	default:
		winner := m.TeamBID
		return Outcome{Kind: OutcomeWinner, WinnerID: &winner}
	}
}
