package domain

import (
	"time"

	"github.com/google/uuid"
)

// Match references its two teams by id. Team order is display-only; outcome
// semantics never depend on which side is A. Scores are either both set or
// both nil — a half-recorded score is invalid and rejected by ValidateMatch.
type Match struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamAID      uuid.UUID `json:"team_a_id" gorm:"type:uuid;not null"`
	TeamBID      uuid.UUID `json:"team_b_id" gorm:"type:uuid;not null"`
	TeamAMapsWon *int      `json:"team_a_maps_won"`
	TeamBMapsWon *int      `json:"team_b_maps_won"`
	Date         time.Time `json:"date" gorm:"not null"`

	TeamA        *Team              `json:"team_a,omitempty" gorm:"foreignKey:TeamAID"`
	TeamB        *Team              `json:"team_b,omitempty" gorm:"foreignKey:TeamBID"`
	Participants []MatchParticipant `json:"participants,omitempty" gorm:"foreignKey:MatchID"`
}

func (m *Match) Scored() bool {
	return m.TeamAMapsWon != nil && m.TeamBMapsWon != nil
}

// MatchParticipant is one player's slot in a match's roster snapshot. Rows are
// created together with a scored match (or via the manual escape hatch) and
// destroyed only with the match; they are never updated in place.
type MatchParticipant struct {
	MatchID  uuid.UUID `json:"match_id" gorm:"type:uuid;primaryKey"`
	PlayerID uuid.UUID `json:"player_id" gorm:"type:uuid;primaryKey"`

	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}
