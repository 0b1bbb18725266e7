package domain

import "errors"

var (
	MessageSuccessGetSuggestions  = "cook suggestions retrieved successfully"
	MessageSuccessGetPairings     = "pairing suggestions retrieved successfully"
	MessageSuccessGetCompleteMeal = "complete meal suggestion retrieved successfully"

	MessageFailedGetSuggestions  = "failed to retrieve cook suggestions"
	MessageFailedGetPairings     = "failed to retrieve pairing suggestions"
	MessageFailedGetCompleteMeal = "failed to retrieve complete meal suggestion"

	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")
)

type (
	// RecipeMatchResult is derived per request and never persisted.
	// len(AvailableItems) + len(MissingItems) always equals the recipe's
	// required (non-optional) ingredient count.
	RecipeMatchResult struct {
		Recipe         Recipe   `json:"recipe"`
		Score          float64  `json:"score"`
		AvailableItems []string `json:"available_items"`
		MissingItems   []string `json:"missing_items"`
	}

	PairingSuggestion struct {
		Recipe       Recipe  `json:"recipe"`
		PairingScore float64 `json:"pairing_score"`
		Reason       string  `json:"reason"`
	}

	CookSuggestionsResponse struct {
		CookNow        []RecipeMatchResult `json:"cook_now"`
		NearMatch      []RecipeMatchResult `json:"near_match"`
		TotalRecipes   int                 `json:"total_recipes"`
		InventoryItems int                 `json:"inventory_items"`
	}

	CompleteMealResponse struct {
		Main         *Recipe             `json:"main,omitempty"`
		Curry        *Recipe             `json:"curry,omitempty"`
		Suggestions  []PairingSuggestion `json:"suggestions"`
		TimingAdvice string              `json:"timing_advice,omitempty"`
	}
)
