package domain

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "Scheduled"
	AppointmentInProgress AppointmentStatus = "InProgress"
	AppointmentCompleted  AppointmentStatus = "Completed"
)

type Appointment struct {
	ID          int64             `gorm:"primaryKey" json:"id"`
	Customer    string            `gorm:"size:255;not null" json:"customer"`
	Vehicle     string            `gorm:"size:255;not null" json:"vehicle"`
	Date        time.Time         `gorm:"index" json:"date"`
	ServiceType string            `gorm:"size:128" json:"service_type"`
	Status      AppointmentStatus `gorm:"size:16;index" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Appointment) TableName() string { return "appointments" }
