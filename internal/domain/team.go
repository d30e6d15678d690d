package domain

import "github.com/google/uuid"

type Region string

const (
	RegionAmericas Region = "Americas"
	RegionEMEA     Region = "EMEA"
	RegionPacific  Region = "Pacific"
	RegionChina    Region = "China"
)

func (r Region) Valid() bool {
	switch r {
	case RegionAmericas, RegionEMEA, RegionPacific, RegionChina:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusArchived Status = "Archived"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusArchived
}

type Team struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name     string    `json:"name" gorm:"not null"`
	TeamCode string    `json:"team_code" gorm:"uniqueIndex;not null"`
	Logo     *string   `json:"logo"`
	Region   Region    `json:"region" gorm:"not null"`
	Record   *string   `json:"record"`
	Status   Status    `json:"status" gorm:"not null;default:'Active'"`
}
