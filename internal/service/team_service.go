package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository"
	"gorm.io/gorm"
)

type TeamService struct {
	teamRepo repository.TeamRepository
}

func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

type TeamInput struct {
	Name     string
	TeamCode string
	Logo     *string
	Region   domain.Region
	Record   *string
	Status   domain.Status
}

func (in TeamInput) validate() *domain.ValidationError {
	var reasons []string
	if in.Name == "" {
		reasons = append(reasons, "name is required")
	}
	if in.TeamCode == "" {
		reasons = append(reasons, "team_code is required")
	}
	if !in.Region.Valid() {
		reasons = append(reasons, "region must be one of Americas, EMEA, Pacific, China")
	}
	if !in.Status.Valid() {
		reasons = append(reasons, "status must be Active or Archived")
	}
	if len(reasons) > 0 {
		return &domain.ValidationError{Reasons: reasons}
	}
	return nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input TeamInput) (*domain.Team, error) {
	if input.Status == "" {
		input.Status = domain.StatusActive
	}
	if verr := input.validate(); verr != nil {
		return nil, verr
	}

	if _, err := s.teamRepo.GetByTeamCode(ctx, input.TeamCode); err == nil {
		return nil, &domain.ConflictError{Message: fmt.Sprintf("team_code %q is already taken", input.TeamCode)}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team := &domain.Team{
		ID:       uuid.New(),
		Name:     input.Name,
		TeamCode: input.TeamCode,
		Logo:     input.Logo,
		Region:   input.Region,
		Record:   input.Record,
		Status:   input.Status,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Resource: "team", ID: id.String()}
	}
	return team, err
}

func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uuid.UUID, input TeamInput) (*domain.Team, error) {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = team.Status
	}
	if verr := input.validate(); verr != nil {
		return nil, verr
	}

	if input.TeamCode != team.TeamCode {
		if _, err := s.teamRepo.GetByTeamCode(ctx, input.TeamCode); err == nil {
			return nil, &domain.ConflictError{Message: fmt.Sprintf("team_code %q is already taken", input.TeamCode)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	team.Name = input.Name
	team.TeamCode = input.TeamCode
	team.Logo = input.Logo
	team.Region = input.Region
	team.Record = input.Record
	team.Status = input.Status

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	err := s.teamRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: "team", ID: id.String()}
	}
	return err
}
