package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository/postgres"
	"github.com/simpleval/simpleval-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func TestMatchRepository_CreateWithSnapshot(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	matchRepo := postgres.NewMatchRepository(testDB.DB)
	participantRepo := postgres.NewParticipantRepository(testDB.DB)
	ctx := context.Background()

	teamA := testutil.NewTeamBuilder().Build(t, testDB.DB)
	teamB := testutil.NewTeamBuilder().Build(t, testDB.DB)
	rosterA := testutil.BuildRoster(t, testDB.DB, teamA, 5)
	rosterB := testutil.BuildRoster(t, testDB.DB, teamB, 5)

	match := &domain.Match{
		ID:           uuid.New(),
		TeamAID:      teamA.ID,
		TeamBID:      teamB.ID,
		TeamAMapsWon: intPtr(2),
		TeamBMapsWon: intPtr(1),
		Date:         time.Now().Add(-24 * time.Hour),
	}

	require.NoError(t, matchRepo.CreateWithSnapshot(ctx, match, 5))

	count, err := participantRepo.CountByMatchID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	// every snapshot row references a player from one of the two rosters
	participants, err := participantRepo.ListByMatchID(ctx, match.ID)
	require.NoError(t, err)

	rosterIDs := make(map[uuid.UUID]bool)
	for _, p := range append(rosterA, rosterB...) {
		rosterIDs[p.ID] = true
	}
	for _, participant := range participants {
		assert.True(t, rosterIDs[participant.PlayerID], "participant %s not in either roster", participant.PlayerID)
	}
}

func TestMatchRepository_CreateWithSnapshot_ShortRosterRollsBack(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	matchRepo := postgres.NewMatchRepository(testDB.DB)
	participantRepo := postgres.NewParticipantRepository(testDB.DB)
	ctx := context.Background()

	teamA := testutil.NewTeamBuilder().Build(t, testDB.DB)
	teamB := testutil.NewTeamBuilder().Build(t, testDB.DB)
	testutil.BuildRoster(t, testDB.DB, teamA, 5)
	testutil.BuildRoster(t, testDB.DB, teamB, 4)

	match := &domain.Match{
		ID:           uuid.New(),
		TeamAID:      teamA.ID,
		TeamBID:      teamB.ID,
		TeamAMapsWon: intPtr(2),
		TeamBMapsWon: intPtr(0),
		Date:         time.Now().Add(-24 * time.Hour),
	}

	err := matchRepo.CreateWithSnapshot(ctx, match, 5)
	var cerr *domain.ConsistencyError
	require.ErrorAs(t, err, &cerr)

	// the whole transaction rolled back: no match row, no participants
	_, err = matchRepo.GetByID(ctx, match.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := participantRepo.CountByMatchID(ctx, match.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMatchRepository_UpdateWithSnapshot_AlreadyRostered(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	matchRepo := postgres.NewMatchRepository(testDB.DB)
	participantRepo := postgres.NewParticipantRepository(testDB.DB)
	ctx := context.Background()

	teamA := testutil.NewTeamBuilder().Build(t, testDB.DB)
	teamB := testutil.NewTeamBuilder().Build(t, testDB.DB)
	testutil.BuildRoster(t, testDB.DB, teamA, 5)
	roster := testutil.BuildRoster(t, testDB.DB, teamB, 5)

	match := testutil.NewMatchBuilder(teamA, teamB).
		WithDate(time.Now().Add(-24 * time.Hour)).
		Build(t, testDB.DB)

	require.NoError(t, participantRepo.Add(ctx, &domain.MatchParticipant{
		MatchID:  match.ID,
		PlayerID: roster[0].ID,
	}))

	match.TeamAMapsWon = intPtr(2)
	match.TeamBMapsWon = intPtr(1)

	err := matchRepo.UpdateWithSnapshot(ctx, match, 5)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	// the manual row is still the only one
	count, err := participantRepo.CountByMatchID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMatchRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	matchRepo := postgres.NewMatchRepository(testDB.DB)
	participantRepo := postgres.NewParticipantRepository(testDB.DB)
	ctx := context.Background()

	teamA := testutil.NewTeamBuilder().Build(t, testDB.DB)
	teamB := testutil.NewTeamBuilder().Build(t, testDB.DB)
	testutil.BuildRoster(t, testDB.DB, teamA, 5)
	testutil.BuildRoster(t, testDB.DB, teamB, 5)

	match := &domain.Match{
		ID:           uuid.New(),
		TeamAID:      teamA.ID,
		TeamBID:      teamB.ID,
		TeamAMapsWon: intPtr(1),
		TeamBMapsWon: intPtr(2),
		Date:         time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, matchRepo.CreateWithSnapshot(ctx, match, 5))

	require.NoError(t, matchRepo.Delete(ctx, match.ID))

	_, err := matchRepo.GetByID(ctx, match.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := participantRepo.CountByMatchID(ctx, match.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "participants must not outlive their match")
}

func TestMatchRepository_Delete_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	matchRepo := postgres.NewMatchRepository(testDB.DB)
	ctx := context.Background()

	err := matchRepo.Delete(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
