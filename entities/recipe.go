// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"time"
)

type Recipe struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title              string    `json:"title"`
	Region             string    `json:"region"`
	Tags               string    `json:"tags" gorm:"type:text"`        // JSON array
	Ingredients        string    `json:"ingredients" gorm:"type:text"` // JSON array
	Steps              string    `json:"steps" gorm:"type:text"`       // JSON array
	PrepMinutes        int       `json:"prep_minutes"`
	CookMinutes        int       `json:"cook_minutes"`
	Servings           int       `json:"servings"`
	CaloriesPerServing *int      `json:"calories_per_serving,omitempty"`
	CompatibleMains    string    `json:"compatible_mains" gorm:"type:text"`   // JSON array
	CompatibleCurries  string    `json:"compatible_curries" gorm:"type:text"` // JSON array
	Notes              string    `json:"notes,omitempty"`
	ImageURL           string    `json:"image_url,omitempty"`

	Timestamp
}

type RecipeBookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	CookedAt time.Time `gorm:"type:timestamp" json:"cooked_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
