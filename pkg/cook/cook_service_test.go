package cook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/matching"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/pairing"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/pantry"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/recipe"
)

type fakePantryService struct {
	pantry.PantryService
	inventory []domain.FoodItem
}

func (f *fakePantryService) GetInventorySnapshot(context.Context) ([]domain.FoodItem, error) {
	return f.inventory, nil
}

type fakeRecipeService struct {
	recipe.RecipeService
	catalog []domain.Recipe
}

func (f *fakeRecipeService) GetAllRecipes(context.Context) ([]domain.Recipe, error) {
	return f.catalog, nil
}

func (f *fakeRecipeService) GetRecipeByID(_ context.Context, id string) (domain.Recipe, error) {
	for _, r := range f.catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Recipe{}, domain.ErrRecipeNotFound
}

func quantity(v float64) *float64 { return &v }

func testCatalog() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:    "r-appam",
			Title: "Appam",
			Ingredients: []domain.RecipeIngredient{
				{Name: "rice"},
				{Name: "coconut"},
			},
			PrepMinutes: 30,
			CookMinutes: 20,
		},
		{
			ID:    "r-fish-curry",
			Title: "Kerala Fish Curry",
			Ingredients: []domain.RecipeIngredient{
				{Name: "fish"},
				{Name: "coconut milk"},
				{Name: "tamarind"},
			},
			PrepMinutes: 15,
			CookMinutes: 25,
		},
	}
}

func newTestCookService(catalog []domain.Recipe, inventory []domain.FoodItem) CookService {
	return NewCookService(
		&fakePantryService{inventory: inventory},
		&fakeRecipeService{catalog: catalog},
		matching.NewMatchingService(),
		pairing.NewPairingService(),
	)
}

func TestGetSuggestions_BucketsResults(t *testing.T) {
	inventory := []domain.FoodItem{
		{Name: "rice", Quantity: quantity(2)},
		{Name: "coconut", Quantity: quantity(1)},
		{Name: "fish", Quantity: quantity(500)},
		{Name: "coconut milk", Quantity: quantity(1)},
	}

	service := newTestCookService(testCatalog(), inventory)

	res, err := service.GetSuggestions(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalRecipes)
	assert.Equal(t, 4, res.InventoryItems)

	require.Len(t, res.CookNow, 1)
	assert.Equal(t, "Appam", res.CookNow[0].Recipe.Title)

	// Fish curry has 2 of 3 required items, below the default cut.
	assert.Empty(t, res.NearMatch)
}

func TestGetSuggestions_CustomThreshold(t *testing.T) {
	inventory := []domain.FoodItem{
		{Name: "fish", Quantity: quantity(500)},
		{Name: "coconut milk", Quantity: quantity(1)},
	}

	service := newTestCookService(testCatalog(), inventory)

	res, err := service.GetSuggestions(context.Background(), 0.6)
	require.NoError(t, err)

	require.Len(t, res.NearMatch, 1)
	assert.Equal(t, "Kerala Fish Curry", res.NearMatch[0].Recipe.Title)
}

func TestGetSuggestions_InvalidThreshold(t *testing.T) {
	service := newTestCookService(testCatalog(), nil)

	_, err := service.GetSuggestions(context.Background(), 1.5)
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)

	_, err = service.GetSuggestions(context.Background(), -0.1)
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestGetPairings_MainDish(t *testing.T) {
	service := newTestCookService(testCatalog(), nil)

	suggestions, err := service.GetPairings(context.Background(), "r-appam")
	require.NoError(t, err)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Kerala Fish Curry", suggestions[0].Recipe.Title)
}

func TestGetPairings_UnknownRecipe(t *testing.T) {
	service := newTestCookService(testCatalog(), nil)

	_, err := service.GetPairings(context.Background(), "r-missing")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetCompleteMeal_FillsCompanionAndTiming(t *testing.T) {
	service := newTestCookService(testCatalog(), nil)

	meal, err := service.GetCompleteMeal(context.Background(), "r-appam")
	require.NoError(t, err)

	require.NotNil(t, meal.Main)
	assert.Equal(t, "Appam", meal.Main.Title)
	require.NotNil(t, meal.Curry)
	assert.Equal(t, "Kerala Fish Curry", meal.Curry.Title)

	// Two dishes: prep 30+15, cooked in parallel for max(20, 25).
	assert.Contains(t, meal.TimingAdvice, "45")
	assert.Contains(t, meal.TimingAdvice, "70")
}

func TestGetCompleteMeal_CurrySelection(t *testing.T) {
	service := newTestCookService(testCatalog(), nil)

	meal, err := service.GetCompleteMeal(context.Background(), "r-fish-curry")
	require.NoError(t, err)

	require.NotNil(t, meal.Curry)
	assert.Equal(t, "Kerala Fish Curry", meal.Curry.Title)
	require.NotNil(t, meal.Main)
	assert.Equal(t, "Appam", meal.Main.Title)
}
