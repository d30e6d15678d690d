package postgres

import (
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Team{},
		&domain.Player{},
		&domain.Match{},
		&domain.MatchParticipant{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Team:        NewTeamRepository(db),
		Player:      NewPlayerRepository(db),
		Match:       NewMatchRepository(db),
		Participant: NewParticipantRepository(db),
	}
}
