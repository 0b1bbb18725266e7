package entities

import (
	"github.com/google/uuid"
)

type FoodItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"` // "Staple", "Spice", "Vegetable", "Protein", "Dairy", "Oil", "Other"
	Quantity     *float64  `json:"quantity,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Source       string    `json:"source"` // "manual", "scanned"
	ScanRecordID *string   `json:"scan_record_id,omitempty"`

	ScanRecord *ScanRecord `gorm:"foreignKey:ScanRecordID"`
	Timestamp
}
