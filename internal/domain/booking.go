package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingDelivered BookingStatus = "Delivered"
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

type Booking struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	LeadID        *int64        `gorm:"index" json:"lead_id,omitempty"`
	QuotationID   *int64        `gorm:"index" json:"quotation_id,omitempty"`
	Customer      string        `gorm:"size:255;not null" json:"customer"`
	Vehicle       string        `gorm:"size:255;not null" json:"vehicle"`
	Amount        int64         `json:"amount"`
	PaymentStatus PaymentStatus `gorm:"size:16" json:"payment_status"`
	Status        BookingStatus `gorm:"size:16;index" json:"status"`
	DeliveryDate  *time.Time    `json:"delivery_date,omitempty"`
	ReceiptURL    string        `gorm:"size:512" json:"receipt_url,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
