package domain

import "time"

type NotificationType string

const (
	NotifLeadAssigned     NotificationType = "lead_assigned"
	NotifBookingCreated   NotificationType = "booking_created"
	NotifDeliveryDone     NotificationType = "delivery_completed"
	NotifJobCardDone      NotificationType = "job_card_completed"
	NotifAppointmentNew   NotificationType = "appointment_created"
	NotifLowStock         NotificationType = "low_stock"
	NotifPayrollGenerated NotificationType = "payroll_generated"
	NotifInvitation       NotificationType = "invitation"
)

type Notification struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	UserID    int64            `gorm:"index:idx_notifications_user_read;not null" json:"user_id"`
	Type      NotificationType `gorm:"size:32" json:"type"`
	Title     string           `gorm:"size:255;not null" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	Link      string           `gorm:"size:512" json:"link,omitempty"`
	Read      bool             `gorm:"index:idx_notifications_user_read;default:false" json:"read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
