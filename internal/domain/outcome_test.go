package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDeriveOutcome(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	teamA := uuid.New()
	teamB := uuid.New()

	tests := []struct {
		name       string
		match      *domain.Match
		wantKind   domain.OutcomeKind
		wantWinner *uuid.UUID
	}{
		{
			name: "future match without scores is unscored",
			match: &domain.Match{
				TeamAID: teamA, TeamBID: teamB,
				Date: now.Add(24 * time.Hour),
			},
			wantKind: domain.OutcomeUnscored,
		},
		{
			name: "past match without scores is unknown",
			match: &domain.Match{
				TeamAID: teamA, TeamBID: teamB,
				Date: now.Add(-24 * time.Hour),
			},
			wantKind: domain.OutcomeUnknown,
		},
		{
			name: "equal scores is a draw",
			match: &domain.Match{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(2),
				Date: now.Add(-24 * time.Hour),
			},
			wantKind: domain.OutcomeDraw,
		},
		{
			name: "team A wins on higher maps",
			match: &domain.Match{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(2), TeamBMapsWon: intPtr(1),
				Date: now.Add(-24 * time.Hour),
			},
			wantKind:   domain.OutcomeWinner,
			wantWinner: &teamA,
		},
		{
			name: "team B wins on higher maps",
			match: &domain.Match{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: intPtr(0), TeamBMapsWon: intPtr(3),
				Date: now.Add(-24 * time.Hour),
			},
			wantKind:   domain.OutcomeWinner,
			wantWinner: &teamB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := domain.DeriveOutcome(tt.match, now)
			assert.Equal(t, tt.wantKind, outcome.Kind)
			if tt.wantWinner != nil {
				require.NotNil(t, outcome.WinnerID)
				assert.Equal(t, *tt.wantWinner, *outcome.WinnerID)
			} else {
				assert.Nil(t, outcome.WinnerID)
			}
		})
	}
}

// Swapping the two teams must never change the result, only relabel it.
func TestDeriveOutcome_SymmetricUnderTeamSwap(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	teamA := uuid.New()
	teamB := uuid.New()

	scorePairs := []struct {
		a, b *int
	}{
		{intPtr(2), intPtr(1)},
		{intPtr(0), intPtr(3)},
		{intPtr(2), intPtr(2)},
		{nil, nil},
	}

	for _, dateOffset := range []time.Duration{-24 * time.Hour, 24 * time.Hour} {
		for _, pair := range scorePairs {
			if pair.a == nil && dateOffset < 0 {
				// unscored past is Unknown either way; covered below
				continue
			}
			match := &domain.Match{
				TeamAID: teamA, TeamBID: teamB,
				TeamAMapsWon: pair.a, TeamBMapsWon: pair.b,
				Date: now.Add(dateOffset),
			}
			swapped := &domain.Match{
				TeamAID: teamB, TeamBID: teamA,
				TeamAMapsWon: pair.b, TeamBMapsWon: pair.a,
				Date: now.Add(dateOffset),
			}

			got := domain.DeriveOutcome(match, now)
			gotSwapped := domain.DeriveOutcome(swapped, now)

			assert.Equal(t, got.Kind, gotSwapped.Kind)
			if got.Kind == domain.OutcomeWinner {
				require.NotNil(t, gotSwapped.WinnerID)
				assert.Equal(t, *got.WinnerID, *gotSwapped.WinnerID)
			}
		}
	}

	// unscored in the past: Unknown regardless of side order
	past := &domain.Match{TeamAID: teamA, TeamBID: teamB, Date: now.Add(-time.Hour)}
	pastSwapped := &domain.Match{TeamAID: teamB, TeamBID: teamA, Date: now.Add(-time.Hour)}
	assert.Equal(t, domain.OutcomeUnknown, domain.DeriveOutcome(past, now).Kind)
	assert.Equal(t, domain.OutcomeUnknown, domain.DeriveOutcome(pastSwapped, now).Kind)
}
