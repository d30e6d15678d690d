package service

import (
	"github.com/simpleval/simpleval-api/internal/config"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository"
)

type Services struct {
	Team   *TeamService
	Player *PlayerService
	Match  *MatchService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	rules := domain.MatchRules{
		RosterSize: cfg.RosterSize,
		MaxMapsWon: cfg.MaxMapsWon,
	}

	return &Services{
		Team:   NewTeamService(repos.Team),
		Player: NewPlayerService(repos.Player, repos.Team),
		Match:  NewMatchService(repos.Match, repos.Participant, repos.Player, repos.Team, rules),
	}
}
