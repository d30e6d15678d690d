package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository/postgres"
	"github.com/simpleval/simpleval-api/internal/service"
	"github.com/simpleval/simpleval-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamService(t *testing.T) (*service.TeamService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewTeamService(repos.Team), testDB
}

func TestTeamService_CreateTeam(t *testing.T) {
	svc, _ := newTeamService(t)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, service.TeamInput{
		Name:     "Sentinels",
		TeamCode: "SEN",
		Region:   domain.RegionAmericas,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sentinels", team.Name)
	assert.Equal(t, "SEN", team.TeamCode)
	// status defaults to active when omitted
	assert.Equal(t, domain.StatusActive, team.Status)

	got, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, got.ID)
}

func TestTeamService_CreateTeam_ValidationReasons(t *testing.T) {
	svc, _ := newTeamService(t)
	ctx := context.Background()

	_, err := svc.CreateTeam(ctx, service.TeamInput{
		Region: domain.Region("Mars"),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"name is required",
		"team_code is required",
		"region must be one of Americas, EMEA, Pacific, China",
	}, verr.Reasons)
}

func TestTeamService_CreateTeam_DuplicateCode(t *testing.T) {
	svc, _ := newTeamService(t)
	ctx := context.Background()

	_, err := svc.CreateTeam(ctx, service.TeamInput{
		Name: "Sentinels", TeamCode: "SEN", Region: domain.RegionAmericas,
	})
	require.NoError(t, err)

	_, err = svc.CreateTeam(ctx, service.TeamInput{
		Name: "Shadow Entity", TeamCode: "SEN", Region: domain.RegionEMEA,
	})

	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Message, "SEN")
}

func TestTeamService_UpdateTeam(t *testing.T) {
	svc, _ := newTeamService(t)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, service.TeamInput{
		Name: "Sentinels", TeamCode: "SEN", Region: domain.RegionAmericas,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTeam(ctx, team.ID, service.TeamInput{
		Name:     "Sentinels",
		TeamCode: "SEN",
		Region:   domain.RegionAmericas,
		Status:   domain.StatusArchived,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, updated.Status)

	// keeping your own code is not a conflict
	_, err = svc.UpdateTeam(ctx, team.ID, service.TeamInput{
		Name: "Sentinels", TeamCode: "SEN", Region: domain.RegionAmericas,
	})
	require.NoError(t, err)
}

func TestTeamService_UpdateTeam_CodeTaken(t *testing.T) {
	svc, _ := newTeamService(t)
	ctx := context.Background()

	_, err := svc.CreateTeam(ctx, service.TeamInput{
		Name: "Sentinels", TeamCode: "SEN", Region: domain.RegionAmericas,
	})
	require.NoError(t, err)

	other, err := svc.CreateTeam(ctx, service.TeamInput{
		Name: "100 Thieves", TeamCode: "100T", Region: domain.RegionAmericas,
	})
	require.NoError(t, err)

	_, err = svc.UpdateTeam(ctx, other.ID, service.TeamInput{
		Name: "100 Thieves", TeamCode: "SEN", Region: domain.RegionAmericas,
	})

	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestTeamService_DeleteTeam(t *testing.T) {
	svc, _ := newTeamService(t)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, service.TeamInput{
		Name: "Sentinels", TeamCode: "SEN", Region: domain.RegionAmericas,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(ctx, team.ID))

	var nferr *domain.NotFoundError
	_, err = svc.GetTeam(ctx, team.ID)
	require.ErrorAs(t, err, &nferr)

	require.ErrorAs(t, svc.DeleteTeam(ctx, uuid.New()), &nferr)
}
