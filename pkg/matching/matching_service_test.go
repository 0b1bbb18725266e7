package matching

import (
	"testing"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v float64) *float64 {
	return &v
}

func appamRecipe() domain.Recipe {
	return domain.Recipe{
		Title: "Appam",
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Optional: false},
			{Name: "coconut", Optional: false},
			{Name: "sugar", Optional: true},
		},
	}
}

func TestMatchRecipesToInventory_FullMatch(t *testing.T) {
	service := NewMatchingService()

	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: qty(2)},
		{Name: "coconut", Quantity: qty(1)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{appamRecipe()}, inventory)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"rice", "coconut"}, result.AvailableItems)
	assert.Empty(t, result.MissingItems)

	cookNow := service.GetCookNowRecipes(results)
	require.Len(t, cookNow, 1)
	assert.Equal(t, "Appam", cookNow[0].Recipe.Title)

	nearMatch := service.GetNearMatchRecipes(results, DefaultNearMatchThreshold)
	assert.Empty(t, nearMatch)
}

func TestMatchRecipesToInventory_HalfMatchExcludedFromBothBuckets(t *testing.T) {
	service := NewMatchingService()

	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: qty(2)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{appamRecipe()}, inventory)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, []string{"rice"}, result.AvailableItems)
	assert.Equal(t, []string{"coconut"}, result.MissingItems)

	// 0.5 is below the 0.7 threshold: silently dropped from both buckets.
	assert.Empty(t, service.GetCookNowRecipes(results))
	assert.Empty(t, service.GetNearMatchRecipes(results, DefaultNearMatchThreshold))
}

func TestMatchRecipesToInventory_PartitionInvariant(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Thoran",
		Ingredients: []domain.RecipeIngredient{
			{Name: "cabbage", Optional: false},
			{Name: "coconut", Optional: false},
			{Name: "mustard seeds", Optional: false},
			{Name: "curry leaves", Optional: true},
		},
	}
	inventory := []domain.FoodItem{
		{Name: "coconut", Quantity: qty(1)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, inventory)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 3, len(result.AvailableItems)+len(result.MissingItems))
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestMatchRecipesToInventory_ZeroRequiredIngredients(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Garnish",
		Ingredients: []domain.RecipeIngredient{
			{Name: "coriander leaves", Optional: true},
		},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, []domain.FoodItem{
		{Name: "coriander leaves", Quantity: qty(1)},
	})
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.AvailableItems)
	assert.Empty(t, result.MissingItems)

	// Zero required ingredients never qualifies as cook-now.
	assert.Empty(t, service.GetCookNowRecipes(results))
}

func TestMatchRecipesToInventory_SubstituteResolves(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Ulli Chammanthi",
		Ingredients: []domain.RecipeIngredient{
			{Name: "onion", Optional: false},
		},
	}
	inventory := []domain.FoodItem{
		{Name: "shallots", Quantity: qty(2)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, inventory)
	require.Len(t, results, 1)

	assert.Equal(t, []string{"onion"}, results[0].AvailableItems)
	assert.Empty(t, results[0].MissingItems)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestMatchRecipesToInventory_ZeroQuantityIsAbsent(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Steamed Rice",
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Optional: false},
		},
	}
	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: qty(0)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, inventory)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"rice"}, results[0].MissingItems)

	// Zero quantity must not satisfy a substitution target either.
	curry := domain.Recipe{
		Title: "Curry Base",
		Ingredients: []domain.RecipeIngredient{
			{Name: "coconut oil", Optional: false},
		},
	}
	results = service.MatchRecipesToInventory([]domain.Recipe{curry}, []domain.FoodItem{
		{Name: "vegetable oil", Quantity: qty(0)},
	})
	require.Len(t, results, 1)
	assert.Equal(t, []string{"coconut oil"}, results[0].MissingItems)
}

func TestMatchRecipesToInventory_NegativeQuantityClampedToAbsent(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Steamed Rice",
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Optional: false},
		},
	}
	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, []domain.FoodItem{
		{Name: "rice", Quantity: qty(-3)},
	})
	require.Len(t, results, 1)
	assert.Equal(t, []string{"rice"}, results[0].MissingItems)
}

func TestMatchRecipesToInventory_NilQuantityIsPresent(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Steamed Rice",
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Optional: false},
		},
	}
	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, []domain.FoodItem{
		{Name: "Rice"},
	})
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestMatchRecipesToInventory_DuplicateNamesLastWriteWins(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Steamed Rice",
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Optional: false},
		},
	}
	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: qty(2)},
		{Name: "Rice", Quantity: qty(0)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, inventory)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"rice"}, results[0].MissingItems)
}

func TestMatchRecipesToInventory_SortedByScoreStable(t *testing.T) {
	service := NewMatchingService()

	recipes := []domain.Recipe{
		{Title: "A", Ingredients: []domain.RecipeIngredient{{Name: "salt"}, {Name: "pepper"}}},
		{Title: "B", Ingredients: []domain.RecipeIngredient{{Name: "rice"}}},
		{Title: "C", Ingredients: []domain.RecipeIngredient{{Name: "sugar"}, {Name: "flour"}}},
	}
	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: qty(1)},
	}

	results := service.MatchRecipesToInventory(recipes, inventory)
	require.Len(t, results, 3)

	assert.Equal(t, "B", results[0].Recipe.Title)
	// A and C both score zero; catalog order is preserved.
	assert.Equal(t, "A", results[1].Recipe.Title)
	assert.Equal(t, "C", results[2].Recipe.Title)
}

func TestMatchRecipesToInventory_Idempotent(t *testing.T) {
	service := NewMatchingService()

	recipes := []domain.Recipe{appamRecipe()}
	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: qty(2)},
		{Name: "coconut", Quantity: qty(1)},
	}

	first := service.MatchRecipesToInventory(recipes, inventory)
	second := service.MatchRecipesToInventory(recipes, inventory)
	assert.Equal(t, first, second)
}

func TestGetNearMatchRecipes_Range(t *testing.T) {
	service := NewMatchingService()

	recipe := domain.Recipe{
		Title: "Sambar",
		Ingredients: []domain.RecipeIngredient{
			{Name: "toor dal", Optional: false},
			{Name: "sambar powder", Optional: false},
			{Name: "tamarind", Optional: false},
			{Name: "drumstick", Optional: false},
		},
	}
	inventory := []domain.FoodItem{
		{Name: "toor dal", Quantity: qty(1)},
		{Name: "sambar powder", Quantity: qty(1)},
		{Name: "tamarind", Quantity: qty(1)},
	}

	results := service.MatchRecipesToInventory([]domain.Recipe{recipe}, inventory)
	require.Len(t, results, 1)
	assert.Equal(t, 0.75, results[0].Score)

	nearMatch := service.GetNearMatchRecipes(results, DefaultNearMatchThreshold)
	require.Len(t, nearMatch, 1)

	// Cook-now and near-match are disjoint.
	assert.Empty(t, service.GetCookNowRecipes(results))
}

func TestGetSubstituteSuggestions(t *testing.T) {
	service := NewMatchingService()

	assert.Equal(t, []string{"shallots", "red onion", "white onion"}, service.GetSubstituteSuggestions("Onion"))
	assert.Empty(t, service.GetSubstituteSuggestions("saffron"))
}

func TestGenerateShoppingList(t *testing.T) {
	service := NewMatchingService()

	list := service.GenerateShoppingList([]string{"rice", "unknown_item"})
	require.Len(t, list, 2)
	assert.Equal(t, domain.ShoppingListItem{Item: "rice", Category: "Staple"}, list[0])
	assert.Equal(t, domain.ShoppingListItem{Item: "unknown_item", Category: "Other"}, list[1])
}

func TestGenerateShoppingList_KeepsDuplicates(t *testing.T) {
	service := NewMatchingService()

	list := service.GenerateShoppingList([]string{"fish", "fish"})
	require.Len(t, list, 2)
	assert.Equal(t, list[0], list[1])
}
