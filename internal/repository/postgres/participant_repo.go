package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *participantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Get(ctx context.Context, matchID, playerID uuid.UUID) (*domain.MatchParticipant, error) {
	var participant domain.MatchParticipant
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("match_id = ? AND player_id = ?", matchID, playerID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) ListByMatchID(ctx context.Context, matchID uuid.UUID) ([]*domain.MatchParticipant, error) {
	var participants []*domain.MatchParticipant
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("match_id = ?", matchID).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) CountByMatchID(ctx context.Context, matchID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MatchParticipant{}).
		Where("match_id = ?", matchID).
		Count(&count).Error
	return count, err
}

func (r *participantRepository) Add(ctx context.Context, participant *domain.MatchParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) Remove(ctx context.Context, matchID, playerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("match_id = ? AND player_id = ?", matchID, playerID).
		Delete(&domain.MatchParticipant{}).Error
}

func (r *participantRepository) Clear(ctx context.Context, matchID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&domain.MatchParticipant{}).Error
}
