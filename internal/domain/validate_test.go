package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRules_ValidateMatch(t *testing.T) {
	rules := domain.DefaultMatchRules()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	teamA := uuid.New()
	teamB := uuid.New()

	tests := []struct {
		name        string
		proposed    domain.ProposedMatch
		sizeA       int
		sizeB       int
		wantReasons []string
	}{
		{
			name: "future match without scores is admissible",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB, Date: future,
			},
		},
		{
			name: "past match with scores and full rosters is admissible",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(1),
				Date: past,
			},
			sizeA: 5, sizeB: 5,
		},
		{
			name: "draw scores are admissible",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(2),
				Date: past,
			},
			sizeA: 5, sizeB: 5,
		},
		{
			name: "same team on both sides",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamA, Date: future,
			},
			wantReasons: []string{"teams must differ"},
		},
		{
			name: "half-specified score",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2),
				Date:         past,
			},
			wantReasons: []string{"score must be fully specified or absent"},
		},
		{
			name: "score for a future match",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(1),
				Date: future,
			},
			sizeA: 5, sizeB: 5,
			wantReasons: []string{"cannot record a result for a future match"},
		},
		{
			name: "short roster when recording a result",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(1),
				Date: past,
			},
			sizeA: 3, sizeB: 5,
			wantReasons: []string{"each team must have exactly 5 players to record a result"},
		},
		{
			name: "short roster is ignored without a score",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB, Date: future,
			},
			sizeA: 0, sizeB: 0,
		},
		{
			name: "score above the map cap",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(4), TeamBMapsWon: intPtr(1),
				Date: past,
			},
			sizeA: 5, sizeB: 5,
			wantReasons: []string{"team A maps won must be between 0 and 3"},
		},
		{
			name: "all violations reported together",
			proposed: domain.ProposedMatch{
				TeamAID: teamA, TeamBID: teamA,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(1),
				Date: future,
			},
			sizeA: 3, sizeB: 3,
			wantReasons: []string{
				"teams must differ",
				"cannot record a result for a future match",
				"each team must have exactly 5 players to record a result",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := rules.ValidateMatch(tt.proposed, tt.sizeA, tt.sizeB, now)

			if len(tt.wantReasons) == 0 {
				assert.Nil(t, verr)
				return
			}

			require.NotNil(t, verr)
			assert.Equal(t, tt.wantReasons, verr.Reasons)
		})
	}
}

func TestMatchRules_ConfigurableRosterSize(t *testing.T) {
	rules := domain.MatchRules{RosterSize: 3, MaxMapsWon: 3}
	now := time.Now()

	proposed := domain.ProposedMatch{
		TeamAID: uuid.New(), TeamBID: uuid.New(),
		TeamAMapsWon: intPtr(1), TeamBMapsWon: intPtr(0),
		Date: now.Add(-time.Hour),
	}

	assert.Nil(t, rules.ValidateMatch(proposed, 3, 3, now))

	verr := rules.ValidateMatch(proposed, 5, 5, now)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Reasons[0], "exactly 3 players")
}
