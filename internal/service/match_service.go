package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository"
	"gorm.io/gorm"
)

// MatchService is the only component with write authority over matches and
// their participant rows together. Every mutating operation runs as a single
// transactional unit in the repository layer, so a match row never exists
// with a partial roster snapshot.
type MatchService struct {
	matchRepo       repository.MatchRepository
	participantRepo repository.ParticipantRepository
	playerRepo      repository.PlayerRepository
	teamRepo        repository.TeamRepository
	rules           domain.MatchRules
	now             func() time.Time
}

func NewMatchService(
	matchRepo repository.MatchRepository,
	participantRepo repository.ParticipantRepository,
	playerRepo repository.PlayerRepository,
	teamRepo repository.TeamRepository,
	rules domain.MatchRules,
) *MatchService {
	return &MatchService{
		matchRepo:       matchRepo,
		participantRepo: participantRepo,
		playerRepo:      playerRepo,
		teamRepo:        teamRepo,
		rules:           rules,
		now:             time.Now,
	}
}

type MatchInput struct {
	TeamAID      uuid.UUID
	TeamBID      uuid.UUID
	TeamAMapsWon *int
	TeamBMapsWon *int
	Date         time.Time
}

// Rules exposes the configured thresholds so callers (and the UI behind
// them) validate against the same numbers the server enforces.
func (s *MatchService) Rules() domain.MatchRules {
	return s.rules
}

func (s *MatchService) Outcome(m *domain.Match) domain.Outcome {
	return domain.DeriveOutcome(m, s.now())
}

func (s *MatchService) checkTeamExists(ctx context.Context, id uuid.UUID) error {
	_, err := s.teamRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: "team", ID: id.String()}
	}
	return err
}

// rosterSizes reads both teams' current roster sizes. Only consulted when a
// score is being recorded; the authoritative re-read happens inside the
// write transaction.
func (s *MatchService) rosterSizes(ctx context.Context, teamAID, teamBID uuid.UUID) (int, int, error) {
	rosterA, err := s.playerRepo.ListByTeamID(ctx, teamAID)
	if err != nil {
		return 0, 0, err
	}
	rosterB, err := s.playerRepo.ListByTeamID(ctx, teamBID)
	if err != nil {
		return 0, 0, err
	}
	return len(rosterA), len(rosterB), nil
}

func (s *MatchService) CreateMatch(ctx context.Context, input MatchInput) (*domain.Match, error) {
	if err := s.checkTeamExists(ctx, input.TeamAID); err != nil {
		return nil, err
	}
	if input.TeamBID != input.TeamAID {
		if err := s.checkTeamExists(ctx, input.TeamBID); err != nil {
			return nil, err
		}
	}

	proposed := domain.ProposedMatch{
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		TeamAMapsWon: input.TeamAMapsWon,
		TeamBMapsWon: input.TeamBMapsWon,
		Date:         input.Date,
	}

	var sizeA, sizeB int
	if proposed.Scored() {
		var err error
		sizeA, sizeB, err = s.rosterSizes(ctx, input.TeamAID, input.TeamBID)
		if err != nil {
			return nil, err
		}
	}

	if verr := s.rules.ValidateMatch(proposed, sizeA, sizeB, s.now()); verr != nil {
		return nil, verr
	}

	match := &domain.Match{
		ID:           uuid.New(),
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		TeamAMapsWon: input.TeamAMapsWon,
		TeamBMapsWon: input.TeamBMapsWon,
		Date:         input.Date,
	}

	if match.Scored() {
		if err := s.matchRepo.CreateWithSnapshot(ctx, match, s.rules.RosterSize); err != nil {
			return nil, err
		}
	} else {
		if err := s.matchRepo.Create(ctx, match); err != nil {
			return nil, err
		}
	}

	return s.matchRepo.GetByID(ctx, match.ID)
}

func (s *MatchService) GetMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Resource: "match", ID: id.String()}
	}
	return match, err
}

func (s *MatchService) ListMatches(ctx context.Context) ([]*domain.Match, error) {
	return s.matchRepo.GetAll(ctx)
}

// UpdateMatch re-validates the proposed state exactly as in CreateMatch.
// Team ids come from the existing row: changing opponents is not supported.
// Recording a score for the first time triggers the roster snapshot, guarded
// against matches that already have one. Clearing both scores is a supported
// update and leaves any existing snapshot intact.
func (s *MatchService) UpdateMatch(ctx context.Context, id uuid.UUID, input MatchInput) (*domain.Match, error) {
	existing, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	proposed := domain.ProposedMatch{
		TeamAID:      existing.TeamAID,
		TeamBID:      existing.TeamBID,
		TeamAMapsWon: input.TeamAMapsWon,
		TeamBMapsWon: input.TeamBMapsWon,
		Date:         input.Date,
	}

	var sizeA, sizeB int
	if proposed.Scored() {
		sizeA, sizeB, err = s.rosterSizes(ctx, existing.TeamAID, existing.TeamBID)
		if err != nil {
			return nil, err
		}
	}

	verr := s.rules.ValidateMatch(proposed, sizeA, sizeB, s.now())
	if (input.TeamAID != uuid.Nil && input.TeamAID != existing.TeamAID) ||
		(input.TeamBID != uuid.Nil && input.TeamBID != existing.TeamBID) {
		if verr == nil {
			verr = &domain.ValidationError{}
		}
		verr.Reasons = append(verr.Reasons, "teams cannot be changed after creation")
	}
	if verr != nil {
		return nil, verr
	}

	newlyScored := proposed.Scored() && !existing.Scored()

	existing.TeamAMapsWon = input.TeamAMapsWon
	existing.TeamBMapsWon = input.TeamBMapsWon
	existing.Date = input.Date

	if newlyScored {
		if err := s.matchRepo.UpdateWithSnapshot(ctx, existing, s.rules.RosterSize); err != nil {
			return nil, err
		}
	} else {
		if err := s.matchRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	return s.matchRepo.GetByID(ctx, id)
}

func (s *MatchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	err := s.matchRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: "match", ID: id.String()}
	}
	return err
}

// AddParticipant is the manual escape hatch for roster correction. It does
// not enforce roster size; it only guarantees referential integrity and
// pair uniqueness.
func (s *MatchService) AddParticipant(ctx context.Context, matchID, playerID uuid.UUID) (*domain.MatchParticipant, error) {
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "player", ID: playerID.String()}
		}
		return nil, err
	}

	if _, err := s.participantRepo.Get(ctx, matchID, playerID); err == nil {
		return nil, &domain.ConflictError{Message: "player is already linked to this match"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := &domain.MatchParticipant{MatchID: matchID, PlayerID: playerID}
	if err := s.participantRepo.Add(ctx, participant); err != nil {
		return nil, err
	}
	return s.participantRepo.Get(ctx, matchID, playerID)
}

func (s *MatchService) GetParticipant(ctx context.Context, matchID, playerID uuid.UUID) (*domain.MatchParticipant, error) {
	participant, err := s.participantRepo.Get(ctx, matchID, playerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Resource: "match participant", ID: matchID.String() + "/" + playerID.String()}
	}
	return participant, err
}

// RemoveParticipant deletes one join row. Removing an absent pair is a
// no-op success; only an unknown match is an error.
func (s *MatchService) RemoveParticipant(ctx context.Context, matchID, playerID uuid.UUID) error {
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return err
	}
	return s.participantRepo.Remove(ctx, matchID, playerID)
}

func (s *MatchService) ClearParticipants(ctx context.Context, matchID uuid.UUID) error {
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return err
	}
	return s.participantRepo.Clear(ctx, matchID)
}
