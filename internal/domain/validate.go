package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchRules holds the configurable thresholds for match admissibility.
// RosterSize is the exact number of players each side must field before a
// result can be recorded; MaxMapsWon caps a single team's map count.
type MatchRules struct {
	RosterSize int
	MaxMapsWon int
}

func DefaultMatchRules() MatchRules {
	return MatchRules{RosterSize: 5, MaxMapsWon: 3}
}

// ProposedMatch is the validator's input: the state a match would have after
// a create or update, before anything is written.
type ProposedMatch struct {
	TeamAID      uuid.UUID
	TeamBID      uuid.UUID
	TeamAMapsWon *int
	TeamBMapsWon *int
	Date         time.Time
}

func (p ProposedMatch) Scored() bool {
	return p.TeamAMapsWon != nil && p.TeamBMapsWon != nil
}

// ValidateMatch checks every admissibility rule and collects all violations
// rather than stopping at the first. Roster sizes are only consulted when a
// score is being recorded; a match may be scheduled before rosters are
// finalized. Returns nil when the proposal is admissible.
func (r MatchRules) ValidateMatch(p ProposedMatch, rosterSizeA, rosterSizeB int, now time.Time) *ValidationError {
	var reasons []string

	if p.TeamAID == p.TeamBID {
		reasons = append(reasons, "teams must differ")
	}

	hasA := p.TeamAMapsWon != nil
	hasB := p.TeamBMapsWon != nil
	if hasA != hasB {
		reasons = append(reasons, "score must be fully specified or absent")
	}

	if hasA && hasB {
		if *p.TeamAMapsWon < 0 || *p.TeamAMapsWon > r.MaxMapsWon {
			reasons = append(reasons, fmt.Sprintf("team A maps won must be between 0 and %d", r.MaxMapsWon))
		}
		if *p.TeamBMapsWon < 0 || *p.TeamBMapsWon > r.MaxMapsWon {
			reasons = append(reasons, fmt.Sprintf("team B maps won must be between 0 and %d", r.MaxMapsWon))
		}
		if p.Date.After(now) {
			reasons = append(reasons, "cannot record a result for a future match")
		}
		if rosterSizeA != r.RosterSize || rosterSizeB != r.RosterSize {
			reasons = append(reasons, fmt.Sprintf("each team must have exactly %d players to record a result", r.RosterSize))
		}
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}
