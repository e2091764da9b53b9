package domain

import "time"

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

type Employee struct {
	ID          int64          `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Email       string         `gorm:"size:255;uniqueIndex" json:"email"`
	Designation string         `gorm:"size:128" json:"designation"`
	Department  string         `gorm:"size:128" json:"department"`
	BasicSalary int64          `json:"basic_salary"`
	Status      EmployeeStatus `gorm:"size:16;index" json:"status"`
	JoinedAt    *time.Time     `json:"joined_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

type PayrollStatus string

const (
	PayrollPending PayrollStatus = "Pending"
	PayrollPaid    PayrollStatus = "Paid"
)

// Payroll carries at most one row per (EmployeeID, Month); the composite
// unique index is the idempotency backstop for re-generation.
type Payroll struct {
	ID          int64         `gorm:"primaryKey" json:"id"`
	EmployeeID  int64         `gorm:"not null;uniqueIndex:idx_payroll_employee_month" json:"employee_id"`
	Month       string        `gorm:"size:7;not null;uniqueIndex:idx_payroll_employee_month" json:"month"`
	BasicSalary int64         `json:"basic_salary"`
	Allowances  int64         `json:"allowances"`
	Deductions  int64         `json:"deductions"`
	NetSalary   int64         `json:"net_salary"`
	Status      PayrollStatus `gorm:"size:16" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Payroll) TableName() string { return "payrolls" }

type LeaveRequest struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	EmployeeID int64     `gorm:"index;not null" json:"employee_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Reason     string    `gorm:"size:255" json:"reason"`
	Status     string    `gorm:"size:16;default:Pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

type Attendance struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	EmployeeID int64      `gorm:"index;not null" json:"employee_id"`
	Date       time.Time  `gorm:"index" json:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Attendance) TableName() string { return "attendances" }
