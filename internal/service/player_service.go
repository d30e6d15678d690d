package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository"
	"gorm.io/gorm"
)

type PlayerService struct {
	playerRepo repository.PlayerRepository
	teamRepo   repository.TeamRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository, teamRepo repository.TeamRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo, teamRepo: teamRepo}
}

type PlayerInput struct {
	InGameName      string
	RealName        string
	Role            *domain.Role
	CountryName     string
	CountryFlagCode string
	ProfilePicture  *string
	Status          domain.Status
	TeamID          *uuid.UUID
}

func (in PlayerInput) validate() *domain.ValidationError {
	var reasons []string
	if in.InGameName == "" {
		reasons = append(reasons, "in_game_name is required")
	}
	if in.RealName == "" {
		reasons = append(reasons, "real_name is required")
	}
	if in.CountryName == "" {
		reasons = append(reasons, "country_name is required")
	}
	if in.CountryFlagCode == "" {
		reasons = append(reasons, "country_flag_code is required")
	}
	if in.Role != nil && !in.Role.Valid() {
		reasons = append(reasons, "role must be one of Duelist, Initiator, Controller, Sentinel, Flex")
	}
	if !in.Status.Valid() {
		reasons = append(reasons, "status must be Active or Archived")
	}
	if len(reasons) > 0 {
		return &domain.ValidationError{Reasons: reasons}
	}
	return nil
}

func (s *PlayerService) checkTeam(ctx context.Context, teamID *uuid.UUID) error {
	if teamID == nil {
		return nil
	}
	_, err := s.teamRepo.GetByID(ctx, *teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: "team", ID: teamID.String()}
	}
	return err
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerInput) (*domain.Player, error) {
	if input.Status == "" {
		input.Status = domain.StatusActive
	}
	if verr := input.validate(); verr != nil {
		return nil, verr
	}
	if err := s.checkTeam(ctx, input.TeamID); err != nil {
		return nil, err
	}

	player := &domain.Player{
		ID:              uuid.New(),
		InGameName:      input.InGameName,
		RealName:        input.RealName,
		Role:            input.Role,
		CountryName:     input.CountryName,
		CountryFlagCode: input.CountryFlagCode,
		ProfilePicture:  input.ProfilePicture,
		Status:          input.Status,
		TeamID:          input.TeamID,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Resource: "player", ID: id.String()}
	}
	return player, err
}

// ListPlayers with a team id resolves the team's current roster in snapshot
// order; without one it lists everybody.
func (s *PlayerService) ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]*domain.Player, error) {
	if teamID != nil {
		return s.playerRepo.ListByTeamID(ctx, *teamID)
	}
	return s.playerRepo.GetAll(ctx)
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id uuid.UUID, input PlayerInput) (*domain.Player, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = player.Status
	}
	if verr := input.validate(); verr != nil {
		return nil, verr
	}
	if err := s.checkTeam(ctx, input.TeamID); err != nil {
		return nil, err
	}

	player.InGameName = input.InGameName
	player.RealName = input.RealName
	player.Role = input.Role
	player.CountryName = input.CountryName
	player.CountryFlagCode = input.CountryFlagCode
	player.ProfilePicture = input.ProfilePicture
	player.Status = input.Status
	player.TeamID = input.TeamID

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	err := s.playerRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: "player", ID: id.String()}
	}
	return err
}
