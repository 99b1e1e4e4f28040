package entity

import (
	"encoding/json"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a finalized, persisted transaction. Totals are stored in
// cents and never edited in place after creation; corrections happen through
// cancellation plus a new sale.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"owner_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"` // walk-in customers
	SaleNo        string             `gorm:"size:100;unique;not null" json:"sale_no"`
	SaleDate      time.Time          `gorm:"not null" json:"sale_date"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	GrossTotal    int64              `gorm:"default:0" json:"-"` // cents
	Discount      int64              `gorm:"default:0" json:"-"` // cents
	NetTotal      int64              `gorm:"default:0" json:"-"` // cents
	CancelledAt   *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON exposes cent-stored totals as decimals in API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		GrossTotal float64 `json:"gross_total"`
		Discount   float64 `json:"discount"`
		NetTotal   float64 `json:"net_total"`
	}{
		Alias:      Alias(s),
		GrossTotal: float64(s.GrossTotal) / 100,
		Discount:   float64(s.Discount) / 100,
		NetTotal:   float64(s.NetTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// IsCancelled reports whether the sale has been cancelled
func (s *Sale) IsCancelled() bool {
	return s.CancelledAt != nil
}

// CustomerDisplayName returns the name shown on documents
func (s *Sale) CustomerDisplayName() string {
	if s.Customer != nil {
		return s.Customer.Name
	}
	if s.CustomerName != nil {
		return *s.CustomerName
	}
	return ""
}

// SaleItem is one line of a sale. Description is a snapshot of the product
// name at sale time so receipts stay stable when products are renamed.
type SaleItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"` // nil for service lines
	Description string         `gorm:"size:255;not null" json:"description"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // cents
	Subtotal    int64          `gorm:"not null" json:"-"` // cents
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale    Sale     `gorm:"foreignKey:SaleID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON exposes cent-stored amounts as decimals in API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		Subtotal:  float64(si.Subtotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
