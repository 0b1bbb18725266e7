package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessIngestScan        = "receipt scan ingested successfully"
	MessageSuccessGetScanRecord     = "scan record retrieved successfully"
	MessageSuccessShoppingList      = "shopping list generated successfully"
	MessageSuccessEmailShoppingList = "shopping list sent successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedIngestScan        = "failed to ingest receipt scan"
	MessageFailedGetScanRecord     = "failed to retrieve scan record"
	MessageFailedShoppingList      = "failed to generate shopping list"
	MessageFailedEmailShoppingList = "failed to send shopping list"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrScanRecordNotFound = errors.New("scan record not found")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrEmptyScanText      = errors.New("recognized text is empty")
)

type (
	// FoodItem is the inventory snapshot record the matching engine consumes.
	// A nil Quantity means "in stock, amount unknown"; zero means out of stock.
	FoodItem struct {
		ID       string   `json:"id,omitempty"`
		Name     string   `json:"name"`
		Category string   `json:"category"`
		Quantity *float64 `json:"quantity,omitempty"`
		Unit     string   `json:"unit,omitempty"`
	}

	AddFoodItemRequest struct {
		Name     string   `json:"name" validate:"required"`
		Category string   `json:"category" validate:"required"`
		Quantity *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit     string   `json:"unit" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name     string   `json:"name" validate:"omitempty"`
		Category string   `json:"category" validate:"omitempty"`
		Quantity *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit     string   `json:"unit" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Category  string    `json:"category"`
		Quantity  *float64  `json:"quantity,omitempty"`
		Unit      string    `json:"unit,omitempty"`
		Source    string    `json:"source"`
		CreatedAt time.Time `json:"created_at"`
	}

	// ParsedLineItem is one line of receipt text resolved to an ingredient.
	ParsedLineItem struct {
		Raw      string   `json:"raw"`
		Name     string   `json:"name"`
		Quantity *float64 `json:"quantity,omitempty"`
		Unit     string   `json:"unit,omitempty"`
	}

	IngestScanRequest struct {
		RecognizedText string `json:"recognized_text" validate:"required"`
	}

	IngestScanResponse struct {
		ScanID      string           `json:"scan_id"`
		Status      string           `json:"status"`
		ParsedItems []ParsedLineItem `json:"parsed_items"`
		MergedItems int              `json:"merged_items"`
		AddedItems  int              `json:"added_items"`
	}

	ScanRecordResponse struct {
		ID             string           `json:"id"`
		RecognizedText string           `json:"recognized_text"`
		Status         string           `json:"status"`
		ParsedItems    []ParsedLineItem `json:"parsed_items"`
		CreatedAt      time.Time        `json:"created_at"`
	}

	ShoppingListItem struct {
		Item     string `json:"item"`
		Category string `json:"category"`
	}

	ShoppingListRequest struct {
		MissingItems []string `json:"missing_items" validate:"required"`
	}

	EmailShoppingListRequest struct {
		Email        string   `json:"email" validate:"required,email"`
		MissingItems []string `json:"missing_items" validate:"required"`
	}
)
