package jobcard

import "dealershub/internal/domain"

type CreateJobCardRequest struct {
	AppointmentID *int64           `json:"appointment_id,omitempty"`
	Technician    string           `json:"technician" validate:"required"`
	Complaint     string           `json:"complaint"`
	PartsData     domain.PartLines `json:"parts_data,omitempty"`
	LaborCharges  int64            `json:"labor_charges" validate:"gte=0"`
	Notes         string           `json:"notes"`
}

type CompleteJobCardRequest struct {
	LaborCharges *int64 `json:"labor_charges,omitempty" validate:"omitempty,gte=0"`
	Notes        string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status domain.JobCardStatus `json:"status" validate:"required"`
}

// CompleteJobCardResponse reports the billed totals and the stock movement
// per consumed part.
type CompleteJobCardResponse struct {
	JobCard       *domain.JobCard `json:"job_card"`
	PartsTotal    int64           `json:"parts_total"`
	LaborCharges  int64           `json:"labor_charges"`
	TotalAmount   int64           `json:"total_amount"`
	PartsDeducted []StockMovement `json:"parts_deducted"`
}

// StockMovement mirrors the inventory deduction outcome for the response.
type StockMovement struct {
	PartID     int64  `json:"part_id"`
	Name       string `json:"name"`
	Deducted   int64  `json:"deducted"`
	StockAfter int64  `json:"stock_after"`
	LowStock   bool   `json:"low_stock"`
}

type ListResponse struct {
	JobCards []domain.JobCard `json:"job_cards"`
	Total    int64            `json:"total"`
}
