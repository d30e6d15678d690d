package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"gorm.io/gorm"
)

// TeamBuilder creates test teams with a builder pattern
type TeamBuilder struct {
	name     string
	teamCode string
	region   domain.Region
	status   domain.Status
}

// NewTeamBuilder creates a new TeamBuilder with default values
func NewTeamBuilder() *TeamBuilder {
	suffix := uuid.New().String()[:8]
	return &TeamBuilder{
		name:     fmt.Sprintf("Test Team %s", suffix),
		teamCode: fmt.Sprintf("T%s", suffix),
		region:   domain.RegionAmericas,
		status:   domain.StatusActive,
	}
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.name = name
	return b
}

func (b *TeamBuilder) WithTeamCode(code string) *TeamBuilder {
	b.teamCode = code
	return b
}

func (b *TeamBuilder) WithRegion(region domain.Region) *TeamBuilder {
	b.region = region
	return b
}

func (b *TeamBuilder) WithStatus(status domain.Status) *TeamBuilder {
	b.status = status
	return b
}

// Build creates the team in the database
func (b *TeamBuilder) Build(t *testing.T, db *gorm.DB) *domain.Team {
	t.Helper()

	team := &domain.Team{
		ID:       uuid.New(),
		Name:     b.name,
		TeamCode: b.teamCode,
		Region:   b.region,
		Status:   b.status,
	}

	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	return team
}

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	inGameName string
	realName   string
	teamID     *uuid.UUID
	status     domain.Status
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder() *PlayerBuilder {
	suffix := uuid.New().String()[:8]
	return &PlayerBuilder{
		inGameName: fmt.Sprintf("player_%s", suffix),
		realName:   fmt.Sprintf("Test Player %s", suffix),
		status:     domain.StatusActive,
	}
}

func (b *PlayerBuilder) WithInGameName(name string) *PlayerBuilder {
	b.inGameName = name
	return b
}

func (b *PlayerBuilder) WithTeam(team *domain.Team) *PlayerBuilder {
	b.teamID = &team.ID
	return b
}

func (b *PlayerBuilder) WithStatus(status domain.Status) *PlayerBuilder {
	b.status = status
	return b
}

// Build creates the player in the database
func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()

	player := &domain.Player{
		ID:              uuid.New(),
		InGameName:      b.inGameName,
		RealName:        b.realName,
		CountryName:     "United States",
		CountryFlagCode: "us",
		Status:          b.status,
		TeamID:          b.teamID,
	}

	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return player
}

// BuildRoster creates a full roster of players assigned to a team
func BuildRoster(t *testing.T, db *gorm.DB, team *domain.Team, size int) []*domain.Player {
	t.Helper()

	players := make([]*domain.Player, 0, size)
	for i := 0; i < size; i++ {
		player := NewPlayerBuilder().
			WithInGameName(fmt.Sprintf("%s_p%d_%s", team.TeamCode, i, uuid.New().String()[:4])).
			WithTeam(team).
			Build(t, db)
		players = append(players, player)
	}
	return players
}

// MatchBuilder creates test matches with a builder pattern
type MatchBuilder struct {
	teamAID      uuid.UUID
	teamBID      uuid.UUID
	teamAMapsWon *int
	teamBMapsWon *int
	date         time.Time
}

// NewMatchBuilder creates a new MatchBuilder between two teams
func NewMatchBuilder(teamA, teamB *domain.Team) *MatchBuilder {
	return &MatchBuilder{
		teamAID: teamA.ID,
		teamBID: teamB.ID,
		date:    time.Now().Add(24 * time.Hour),
	}
}

func (b *MatchBuilder) WithScores(a, bScore int) *MatchBuilder {
	b.teamAMapsWon = &a
	b.teamBMapsWon = &bScore
	return b
}

func (b *MatchBuilder) WithDate(date time.Time) *MatchBuilder {
	b.date = date
	return b
}

// Build creates the match row directly, bypassing the orchestrator
func (b *MatchBuilder) Build(t *testing.T, db *gorm.DB) *domain.Match {
	t.Helper()

	match := &domain.Match{
		ID:           uuid.New(),
		TeamAID:      b.teamAID,
		TeamBID:      b.teamBID,
		TeamAMapsWon: b.teamAMapsWon,
		TeamBMapsWon: b.teamBMapsWon,
		Date:         b.date,
	}

	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	return match
}
