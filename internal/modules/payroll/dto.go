package payroll

import "dealershub/internal/domain"

type GeneratePayrollRequest struct {
	Month string `json:"month" validate:"required"`
}

// GeneratePayrollResponse reports only the rows created by this run;
// employees already covered for the month are skipped silently.
type GeneratePayrollResponse struct {
	Month        string           `json:"month"`
	CreatedCount int              `json:"created_count"`
	Rows         []domain.Payroll `json:"rows"`
}

type ListResponse struct {
	Payrolls []domain.Payroll `json:"payrolls"`
}
