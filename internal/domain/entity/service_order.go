package entity

import (
	"encoding/json"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOrder tracks one device through the repair bench
type ServiceOrder struct {
	ID             uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID        uuid.UUID               `gorm:"type:uuid;not null;index" json:"owner_id"`
	UserID         uuid.UUID               `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID     uuid.UUID               `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderNo        string                  `gorm:"size:100;unique;not null" json:"order_no"`
	Device         string                  `gorm:"size:255;not null" json:"device"` // brand + model
	IMEI           *string                 `gorm:"size:50;column:imei" json:"imei,omitempty"`
	ReportedDefect string                  `gorm:"type:text;not null" json:"reported_defect"`
	Diagnosis      *string                 `gorm:"type:text" json:"diagnosis,omitempty"`
	Status         enum.ServiceOrderStatus `gorm:"default:0" json:"status"`
	TechnicianName *string                 `gorm:"size:255" json:"technician_name,omitempty"`
	LaborCost      int64                   `gorm:"default:0" json:"-"` // cents
	PartsCost      int64                   `gorm:"default:0" json:"-"` // cents
	DeliveredAt    *time.Time              `json:"delivered_at,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	DeletedAt      gorm.DeletedAt          `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// MarshalJSON exposes cent-stored costs as decimals in API responses
func (so ServiceOrder) MarshalJSON() ([]byte, error) {
	type Alias ServiceOrder
	return json.Marshal(&struct {
		Alias
		LaborCost float64 `json:"labor_cost"`
		PartsCost float64 `json:"parts_cost"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(so),
		LaborCost: float64(so.LaborCost) / 100,
		PartsCost: float64(so.PartsCost) / 100,
		Total:     float64(so.Total()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new service order
func (so *ServiceOrder) BeforeCreate(tx *gorm.DB) error {
	if so.ID == uuid.Nil {
		so.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceOrder model
func (ServiceOrder) TableName() string {
	return "service_orders"
}

// Total returns labor plus parts in cents
func (so *ServiceOrder) Total() int64 {
	return so.LaborCost + so.PartsCost
}
