package domain

import (
	"database/sql/driver"
	"time"
)

type DeliveryStatus string

const (
	DeliveryScheduled DeliveryStatus = "Scheduled"
	DeliveryCompleted DeliveryStatus = "Completed"
)

type PDIStatus string

const (
	PDIPending PDIStatus = "Pending"
	PDIPassed  PDIStatus = "Passed"
)

// Checklist is the set of pre-delivery inspection flags.
type Checklist map[string]bool

func (c Checklist) Value() (driver.Value, error) { return jsonValue(c) }
func (c *Checklist) Scan(src any) error          { return jsonScan(c, src) }

type Delivery struct {
	ID            int64          `gorm:"primaryKey" json:"id"`
	BookingID     int64          `gorm:"index;not null" json:"booking_id"`
	PDIStatus     PDIStatus      `gorm:"size:16" json:"pdi_status"`
	Checklist     Checklist      `gorm:"type:jsonb" json:"checklist,omitempty"`
	Status        DeliveryStatus `gorm:"size:16;index" json:"status"`
	ScheduledFor  *time.Time     `json:"scheduled_for,omitempty"`
	DeliveryDate  *time.Time     `json:"delivery_date,omitempty"`
	Feedback      string         `gorm:"type:text" json:"feedback,omitempty"`
	HandoverPhoto string         `gorm:"size:512" json:"handover_photo,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Delivery) TableName() string { return "deliveries" }
