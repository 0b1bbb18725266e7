package matching

import (
	"sort"
	"strings"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
)

// DefaultNearMatchThreshold is the minimum completeness score for a recipe
// to show up as a near match.
const DefaultNearMatchThreshold = 0.7

type (
	// MatchingService scores recipes against an inventory snapshot. All
	// methods are pure functions over their inputs; the service holds no
	// state and a single instance is shared across handlers.
	MatchingService interface {
		MatchRecipesToInventory(recipes []domain.Recipe, inventory []domain.FoodItem) []domain.RecipeMatchResult
		GetCookNowRecipes(results []domain.RecipeMatchResult) []domain.RecipeMatchResult
		GetNearMatchRecipes(results []domain.RecipeMatchResult, threshold float64) []domain.RecipeMatchResult
		GetSubstituteSuggestions(ingredient string) []string
		GenerateShoppingList(missingItems []string) []domain.ShoppingListItem
	}

	matchingService struct{}
)

func NewMatchingService() MatchingService {
	return &matchingService{}
}

// MatchRecipesToInventory returns one result per input recipe, sorted by
// score descending. The sort is stable, so recipes with equal scores keep
// their catalog order.
func (s *matchingService) MatchRecipesToInventory(recipes []domain.Recipe, inventory []domain.FoodItem) []domain.RecipeMatchResult {
	index := buildInventoryIndex(inventory)

	results := make([]domain.RecipeMatchResult, 0, len(recipes))
	for _, recipe := range recipes {
		results = append(results, calculateRecipeMatch(recipe, index))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// buildInventoryIndex keys items by lower-cased name. Duplicate names are
// legal in the inventory; the last record wins.
func buildInventoryIndex(inventory []domain.FoodItem) map[string]domain.FoodItem {
	index := make(map[string]domain.FoodItem, len(inventory))
	for _, item := range inventory {
		index[strings.ToLower(item.Name)] = item
	}
	return index
}

func calculateRecipeMatch(recipe domain.Recipe, index map[string]domain.FoodItem) domain.RecipeMatchResult {
	available := []string{}
	missing := []string{}
	required := 0

	for _, ingredient := range recipe.Ingredients {
		if ingredient.Optional {
			continue
		}
		required++

		name := strings.ToLower(ingredient.Name)
		if hasIngredient(name, index) || hasSubstitute(name, index) {
			available = append(available, ingredient.Name)
		} else {
			missing = append(missing, ingredient.Name)
		}
	}

	// A recipe with no required ingredients scores zero: it cannot be
	// "cooked now" off an empty requirement list.
	score := 0.0
	if required > 0 {
		score = float64(len(available)) / float64(required)
	}

	return domain.RecipeMatchResult{
		Recipe:         recipe,
		Score:          score,
		AvailableItems: available,
		MissingItems:   missing,
	}
}

// hasIngredient reports whether the item is in stock. A nil quantity means
// the amount is unknown but the item is present; zero or negative means
// out of stock.
func hasIngredient(name string, index map[string]domain.FoodItem) bool {
	item, ok := index[name]
	if !ok {
		return false
	}
	return item.Quantity == nil || *item.Quantity > 0
}

func hasSubstitute(name string, index map[string]domain.FoodItem) bool {
	for _, substitute := range substitutions[name] {
		if hasIngredient(strings.ToLower(substitute), index) {
			return true
		}
	}
	return false
}

// GetCookNowRecipes returns the results whose required ingredients are all
// satisfied. The comparison is on the item counts, not the float score, so
// a 1.0 match is exact.
func (s *matchingService) GetCookNowRecipes(results []domain.RecipeMatchResult) []domain.RecipeMatchResult {
	cookNow := make([]domain.RecipeMatchResult, 0)
	for _, result := range results {
		if len(result.MissingItems) == 0 && len(result.AvailableItems) > 0 {
			cookNow = append(cookNow, result)
		}
	}
	return cookNow
}

// GetNearMatchRecipes returns results scoring in [threshold, 1.0). Results
// below the threshold are silently excluded. A non-positive threshold falls
// back to the default.
func (s *matchingService) GetNearMatchRecipes(results []domain.RecipeMatchResult, threshold float64) []domain.RecipeMatchResult {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultNearMatchThreshold
	}

	nearMatch := make([]domain.RecipeMatchResult, 0)
	for _, result := range results {
		if len(result.MissingItems) > 0 && result.Score >= threshold {
			nearMatch = append(nearMatch, result)
		}
	}
	return nearMatch
}

func (s *matchingService) GetSubstituteSuggestions(ingredient string) []string {
	return substitutions[strings.ToLower(ingredient)]
}

// GenerateShoppingList maps missing ingredient names to display categories.
// Input order and duplicates are preserved.
func (s *matchingService) GenerateShoppingList(missingItems []string) []domain.ShoppingListItem {
	list := make([]domain.ShoppingListItem, 0, len(missingItems))
	for _, item := range missingItems {
		category, ok := shoppingCategories[strings.ToLower(item)]
		if !ok {
			category = domain.CategoryOther
		}
		list = append(list, domain.ShoppingListItem{Item: item, Category: category})
	}
	return list
}
