package domain

import (
	"database/sql/driver"
	"time"
)

type JobCardStatus string

const (
	JobCardInProgress      JobCardStatus = "InProgress"
	JobCardWaitingForParts JobCardStatus = "WaitingForParts"
	JobCardCompleted       JobCardStatus = "Completed"
)

type InvoiceStatus string

const (
	InvoiceNone      InvoiceStatus = "None"
	InvoiceGenerated InvoiceStatus = "Generated"
)

// PartLine is one consumed spare part on a job card.
type PartLine struct {
	PartID   int64  `json:"part_id"`
	Name     string `json:"name,omitempty"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}

type PartLines []PartLine

func (p PartLines) Value() (driver.Value, error) { return jsonValue(p) }
func (p *PartLines) Scan(src any) error          { return jsonScan(p, src) }

// Total is the parts portion of the job card bill.
func (p PartLines) Total() int64 {
	var sum int64
	for _, l := range p {
		sum += l.Price * l.Quantity
	}
	return sum
}

type JobCard struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	JobNo         string        `gorm:"size:32;uniqueIndex;not null" json:"job_no"`
	AppointmentID *int64        `gorm:"index" json:"appointment_id,omitempty"`
	Technician    string        `gorm:"size:255" json:"technician,omitempty"`
	Complaint     string        `gorm:"type:text" json:"complaint,omitempty"`
	PartsData     PartLines     `gorm:"type:jsonb" json:"parts_data,omitempty"`
	LaborCharges  int64         `json:"labor_charges"`
	TotalAmount   int64         `json:"total_amount"`
	Status        JobCardStatus `gorm:"size:24;index" json:"status"`
	InvoiceStatus InvoiceStatus `gorm:"size:16" json:"invoice_status"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (JobCard) TableName() string { return "job_cards" }
