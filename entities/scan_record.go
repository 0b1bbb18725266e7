package entities

import (
	"github.com/google/uuid"
)

type ScanRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecognizedText string    `json:"recognized_text" gorm:"type:text"`
	ParsedItems    string    `json:"parsed_items,omitempty" gorm:"type:text"` // JSON array
	Status         string    `json:"status"`                                  // "Processed", "Empty"

	FoodItems []*FoodItem `gorm:"foreignKey:ScanRecordID"`
	Timestamp
}
