package domain

import "time"

type SparePart struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	SKU          string    `gorm:"size:64;uniqueIndex;not null" json:"sku"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Stock        int64     `gorm:"not null;default:0" json:"stock"`
	ReorderPoint int64     `gorm:"not null;default:0" json:"reorder_point"`
	UnitPrice    int64     `json:"unit_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SparePart) TableName() string { return "spare_parts" }

func (p *SparePart) LowStock() bool { return p.Stock <= p.ReorderPoint }
