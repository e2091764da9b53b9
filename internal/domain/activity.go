package domain

import (
	"database/sql/driver"
	"time"
)

// ActivityDetails is free-form structured context for an audit entry.
type ActivityDetails map[string]any

func (d ActivityDetails) Value() (driver.Value, error) { return jsonValue(d) }
func (d *ActivityDetails) Scan(src any) error          { return jsonScan(d, src) }

// ActivityLog is append-only; rows are never updated or deleted.
type ActivityLog struct {
	ID         int64           `gorm:"primaryKey" json:"id"`
	UserID     *int64          `gorm:"index" json:"user_id,omitempty"`
	UserName   string          `gorm:"size:255" json:"user_name,omitempty"`
	Action     string          `gorm:"size:64;not null" json:"action"`
	EntityType string          `gorm:"size:64;index;not null" json:"entity_type"`
	EntityID   int64           `gorm:"index" json:"entity_id"`
	EntityName string          `gorm:"size:255" json:"entity_name,omitempty"`
	Details    ActivityDetails `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
