package domain

import "github.com/google/uuid"

type Role string

const (
	RoleDuelist    Role = "Duelist"
	RoleInitiator  Role = "Initiator"
	RoleController Role = "Controller"
	RoleSentinel   Role = "Sentinel"
	RoleFlex       Role = "Flex"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDuelist, RoleInitiator, RoleController, RoleSentinel, RoleFlex:
		return true
	}
	return false
}

// Player.TeamID is a weak reference: a player may have no team, and moving a
// player between teams never touches matches they already played in.
type Player struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InGameName      string     `json:"in_game_name" gorm:"not null"`
	RealName        string     `json:"real_name" gorm:"not null"`
	Role            *Role      `json:"role"`
	CountryName     string     `json:"country_name" gorm:"not null"`
	CountryFlagCode string     `json:"country_flag_code" gorm:"not null"`
	ProfilePicture  *string    `json:"profile_picture"`
	Status          Status     `json:"status" gorm:"not null;default:'Active'"`
	TeamID          *uuid.UUID `json:"team_id" gorm:"type:uuid"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}
