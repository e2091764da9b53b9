package domain

import (
	"database/sql/driver"
	"time"
)

type LeadStatus string

const (
	LeadNew         LeadStatus = "New"
	LeadContacted   LeadStatus = "Contacted"
	LeadTestDrive   LeadStatus = "TestDrive"
	LeadNegotiation LeadStatus = "Negotiation"
	LeadWon         LeadStatus = "Won"
	LeadLost        LeadStatus = "Lost"
)

type LeadTemperature string

const (
	LeadCold LeadTemperature = "Cold"
	LeadWarm LeadTemperature = "Warm"
	LeadHot  LeadTemperature = "Hot"
)

// VehicleInterest is the structured vehicle preference captured on intake.
type VehicleInterest struct {
	Model   string `json:"model,omitempty"`
	Variant string `json:"variant,omitempty"`
	Color   string `json:"color,omitempty"`
	Budget  int64  `json:"budget,omitempty"`
}

func (v VehicleInterest) Value() (driver.Value, error) { return jsonValue(v) }
func (v *VehicleInterest) Scan(src any) error          { return jsonScan(v, src) }

type Lead struct {
	ID              int64            `gorm:"primaryKey" json:"id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Phone           string           `gorm:"size:32;index;not null" json:"phone"`
	Email           string           `gorm:"size:255;index;not null" json:"email"`
	Source          string           `gorm:"size:64" json:"source"`
	Status          LeadStatus       `gorm:"size:32;index" json:"status"`
	Temperature     LeadTemperature  `gorm:"size:16" json:"temperature"`
	Score           int              `json:"score"`
	VehicleInterest *VehicleInterest `gorm:"type:jsonb" json:"vehicle_interest,omitempty"`
	AssignedTo      *int64           `gorm:"index" json:"assigned_to,omitempty"`
	NextAction      string           `gorm:"size:128" json:"next_action,omitempty"`
	NextActionDate  *time.Time       `json:"next_action_date,omitempty"`
	LostReason      string           `gorm:"size:255" json:"lost_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) IsClosed() bool {
	return l.Status == LeadWon || l.Status == LeadLost
}

// leadTransitions holds the forward edges of the lead pipeline. Won is only
// reachable through booking creation, never through a direct status update.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadNew:         {LeadContacted, LeadLost},
	LeadContacted:   {LeadTestDrive, LeadNegotiation, LeadLost},
	LeadTestDrive:   {LeadNegotiation, LeadLost},
	LeadNegotiation: {LeadLost},
}

func (l *Lead) CanTransitionTo(next LeadStatus) bool {
	for _, s := range leadTransitions[l.Status] {
		if s == next {
			return true
		}
	}
	return false
}
