package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).
		Preload("Team").
		First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAll(ctx context.Context) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).Order("in_game_name, id").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// ListByTeamID orders by in_game_name then id so the same live roster always
// snapshots the same players in the same order.
func (r *playerRepository) ListByTeamID(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error) {
	return rosterForTeam(r.db.WithContext(ctx), teamID)
}

func (r *playerRepository) Update(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(player).Error
}

func (r *playerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Player{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// rosterForTeam is shared with the match repository so a snapshot taken
// inside a transaction sees exactly the order ListByTeamID reports.
func rosterForTeam(db *gorm.DB, teamID uuid.UUID) ([]*domain.Player, error) {
	var players []*domain.Player
	err := db.Where("team_id = ?", teamID).
		Order("in_game_name, id").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
