package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)

const (
	CategoryStaple    = "Staple"
	CategorySpice     = "Spice"
	CategoryVegetable = "Vegetable"
	CategoryProtein   = "Protein"
	CategoryDairy     = "Dairy"
	CategoryOil       = "Oil"
	CategoryOther     = "Other"

	SourceManual  = "manual"
	SourceScanned = "scanned"
)

// FoodCategories lists every category an inventory item may carry.
var FoodCategories = []string{
	CategoryStaple,
	CategorySpice,
	CategoryVegetable,
	CategoryProtein,
	CategoryDairy,
	CategoryOil,
	CategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range FoodCategories {
		if c == category {
			return true
		}
	}
	return false
}
