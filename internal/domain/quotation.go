package domain

import (
	"database/sql/driver"
	"math"
	"time"
)

type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "Draft"
	QuotationSent     QuotationStatus = "Sent"
	QuotationAccepted QuotationStatus = "Accepted"
)

// LineItem is a single priced row of a quotation. TaxRate is a whole
// percent (18 means 18%).
type LineItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	TaxRate     int    `json:"tax_rate"`
}

type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) { return jsonValue(li) }
func (li *LineItems) Scan(src any) error          { return jsonScan(li, src) }

// Totals computes subtotal and tax from the line items, rounded to integer
// currency units.
func (li LineItems) Totals() (subtotal, tax int64) {
	for _, it := range li {
		subtotal += it.Amount
		tax += int64(math.Round(float64(it.Amount) * float64(it.TaxRate) / 100))
	}
	return subtotal, tax
}

type Quotation struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	Number    string          `gorm:"size:32;uniqueIndex;not null" json:"number"`
	LeadID    *int64          `gorm:"index" json:"lead_id,omitempty"`
	Customer  string          `gorm:"size:255;not null" json:"customer"`
	Vehicle   string          `gorm:"size:255" json:"vehicle"`
	LineItems LineItems       `gorm:"type:jsonb" json:"line_items"`
	Subtotal  int64           `json:"subtotal"`
	Tax       int64           `json:"tax"`
	Total     int64           `json:"total"`
	Status    QuotationStatus `gorm:"size:16;index" json:"status"`
	ValidTill *time.Time      `json:"valid_till,omitempty"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Quotation) TableName() string { return "quotations" }
