package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WarrantyRecord is an issued warranty certificate. Customer, device and
// service fields are snapshots taken at issue time: the printed document
// must not change when the underlying records are edited later.
type WarrantyRecord struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	ServiceOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"service_order_id"`
	Protocol       string         `gorm:"size:100;unique;not null" json:"protocol"`
	IssuedAt       time.Time      `gorm:"not null" json:"issued_at"`
	CustomerName   string         `gorm:"size:255;not null" json:"customer_name"`
	Device         string         `gorm:"size:255;not null" json:"device"`
	Service        string         `gorm:"type:text;not null" json:"service"`
	Amount         int64          `gorm:"default:0" json:"-"` // cents
	PeriodDays     int            `gorm:"not null" json:"period_days"`
	TechnicianName string         `gorm:"size:255" json:"technician_name"`
	Terms          *string        `gorm:"type:text" json:"terms,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	ServiceOrder ServiceOrder `gorm:"foreignKey:ServiceOrderID" json:"-"`
}

// MarshalJSON exposes the cent-stored amount as a decimal in API responses
func (w WarrantyRecord) MarshalJSON() ([]byte, error) {
	type Alias WarrantyRecord
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(w),
		Amount: float64(w.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new warranty record
func (w *WarrantyRecord) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WarrantyRecord model
func (WarrantyRecord) TableName() string {
	return "warranty_records"
}

// ExpiresAt returns the last day of coverage
func (w *WarrantyRecord) ExpiresAt() time.Time {
	return w.IssuedAt.AddDate(0, 0, w.PeriodDays)
}
