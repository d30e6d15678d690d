package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	GetByTeamCode(ctx context.Context, code string) (*domain.Team, error)
	GetAll(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetAll(ctx context.Context) ([]*domain.Player, error)
	// ListByTeamID is the roster resolver: every player currently assigned to
	// the team, in deterministic order. An unknown team yields an empty
	// slice, not an error.
	ListByTeamID(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MatchRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetAll(ctx context.Context) ([]*domain.Match, error)
	// Create inserts an unscored match; no participants are written.
	Create(ctx context.Context, match *domain.Match) error
	// CreateWithSnapshot inserts the match and its roster snapshot in one
	// transaction. Rosters are re-read inside the transaction; if either has
	// drifted from rosterSize the whole operation rolls back with a
	// ConsistencyError.
	CreateWithSnapshot(ctx context.Context, match *domain.Match, rosterSize int) error
	Update(ctx context.Context, match *domain.Match) error
	// UpdateWithSnapshot saves the match and captures its roster snapshot in
	// one transaction, for updates that record a score for the first time.
	// Fails with a ConflictError if the match already has participants.
	UpdateWithSnapshot(ctx context.Context, match *domain.Match, rosterSize int) error
	// Delete removes the match's participants and then the match itself in
	// one transaction, so no orphaned join rows can survive.
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParticipantRepository interface {
	Get(ctx context.Context, matchID, playerID uuid.UUID) (*domain.MatchParticipant, error)
	ListByMatchID(ctx context.Context, matchID uuid.UUID) ([]*domain.MatchParticipant, error)
	CountByMatchID(ctx context.Context, matchID uuid.UUID) (int64, error)
	Add(ctx context.Context, participant *domain.MatchParticipant) error
	// Remove and Clear are idempotent: deleting an absent pair or an empty
	// match scope is a no-op success.
	Remove(ctx context.Context, matchID, playerID uuid.UUID) error
	Clear(ctx context.Context, matchID uuid.UUID) error
}

type Repositories struct {
	Team        TeamRepository
	Player      PlayerRepository
	Match       MatchRepository
	Participant ParticipantRepository
}
