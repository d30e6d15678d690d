package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simpleval/simpleval-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *matchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	err := r.db.WithContext(ctx).
		Preload("TeamA").
		Preload("TeamB").
		Preload("Participants").
		Preload("Participants.Player").
		First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetAll(ctx context.Context) ([]*domain.Match, error) {
	var matches []*domain.Match
	err := r.db.WithContext(ctx).Order("date DESC").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

// CreateWithSnapshot re-reads both rosters inside the transaction. The
// service validated roster sizes before calling, so a mismatch here means a
// concurrent roster edit slipped between validation and commit — the whole
// insert rolls back rather than materializing a roster that never existed.
func (r *matchRepository) CreateWithSnapshot(ctx context.Context, match *domain.Match, rosterSize int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		return snapshotRosters(tx, match, rosterSize)
	})
}

// Participants are managed explicitly, never through association writes.
func (r *matchRepository) Update(ctx context.Context, match *domain.Match) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(match).Error
}

// UpdateWithSnapshot is the first-score path of a match update: no roster
// snapshot may exist yet, since no replace-roster operation is defined.
func (r *matchRepository) UpdateWithSnapshot(ctx context.Context, match *domain.Match, rosterSize int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.MatchParticipant{}).
			Where("match_id = ?", match.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &domain.ConflictError{
				Message: fmt.Sprintf("match %s already has a roster snapshot", match.ID),
			}
		}
		if err := tx.Omit(clause.Associations).Save(match).Error; err != nil {
			return err
		}
		return snapshotRosters(tx, match, rosterSize)
	})
}

func (r *matchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).
			Delete(&domain.MatchParticipant{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Match{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func snapshotRosters(tx *gorm.DB, match *domain.Match, rosterSize int) error {
	for _, teamID := range []uuid.UUID{match.TeamAID, match.TeamBID} {
		roster, err := rosterForTeam(tx, teamID)
		if err != nil {
			return err
		}
		if len(roster) != rosterSize {
			return &domain.ConsistencyError{
				Message: fmt.Sprintf("team %s roster changed during match creation: have %d players, need %d",
					teamID, len(roster), rosterSize),
			}
		}
		for _, player := range roster {
			participant := &domain.MatchParticipant{
				MatchID:  match.ID,
				PlayerID: player.ID,
			}
			if err := tx.Create(participant).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
