package domain

import "time"

// ServiceHistory is the per-vehicle record of service and handover events.
type ServiceHistory struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Customer    string    `gorm:"size:255;not null" json:"customer"`
	Vehicle     string    `gorm:"size:255;index;not null" json:"vehicle"`
	ServiceType string    `gorm:"size:128" json:"service_type"`
	JobCardID   *int64    `gorm:"index" json:"job_card_id,omitempty"`
	DeliveryID  *int64    `gorm:"index" json:"delivery_id,omitempty"`
	Amount      int64     `json:"amount"`
	ServicedAt  time.Time `json:"serviced_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ServiceHistory) TableName() string { return "service_histories" }
