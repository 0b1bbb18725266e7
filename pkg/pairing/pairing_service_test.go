package pairing

import (
	"testing"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []domain.Recipe {
	return []domain.Recipe{
		{Title: "Matta Rice"},
		{Title: "Kerala Fish Curry"},
		{Title: "Vegetable Stew"},
		{Title: "Appam"},
		{Title: "Puttu"},
		{Title: "Egg Roast"},
		{Title: "Sambar"},
	}
}

func TestNormalizeDishName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Kerala Fish Curry", "fish curry"},
		{"Meen Curry", "fish curry"},
		{"Traditional Appam", "appam"},
		{"Matta Rice", "rice"},
		{"Basmati Rice", "rice"},
		{"Kozhi Curry", "chicken curry"},
		{"Vegetable Curry", "vegetable stew"},
		{"Black Chickpea Curry", "kadala curry"},
		{"Puttu", "puttu"},
		{"Unknown Dish", "unknown dish"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDishName(tt.title), tt.title)
	}
}

func TestSuggestPairingsForMain(t *testing.T) {
	service := NewPairingService()

	suggestions := service.SuggestPairingsForMain(domain.Recipe{Title: "Appam"}, catalog())
	require.Len(t, suggestions, 3)

	// Sorted by pairing score descending.
	assert.Equal(t, "Vegetable Stew", suggestions[0].Recipe.Title)
	assert.Equal(t, 1.0, suggestions[0].PairingScore)
	assert.Equal(t, "Kerala Fish Curry", suggestions[1].Recipe.Title)
	assert.Equal(t, 0.9, suggestions[1].PairingScore)
	assert.Equal(t, "Egg Roast", suggestions[2].Recipe.Title)
	assert.Equal(t, 0.5, suggestions[2].PairingScore, "listed but unweighted pairings default to 0.5")

	assert.Contains(t, suggestions[0].Reason, "Appam")
}

func TestSuggestPairingsForCurry(t *testing.T) {
	service := NewPairingService()

	suggestions := service.SuggestPairingsForCurry(domain.Recipe{Title: "Kerala Fish Curry"}, catalog())
	require.Len(t, suggestions, 3)

	assert.Equal(t, "Matta Rice", suggestions[0].Recipe.Title)
	assert.Equal(t, 1.0, suggestions[0].PairingScore)
	assert.Equal(t, "Appam", suggestions[1].Recipe.Title)
	assert.Equal(t, "Puttu", suggestions[2].Recipe.Title)
}

func TestSuggestPairings_TitleVariantsAreEquivalent(t *testing.T) {
	service := NewPairingService()

	kerala := service.SuggestPairingsForCurry(domain.Recipe{Title: "Kerala Fish Curry"}, catalog())
	meen := service.SuggestPairingsForCurry(domain.Recipe{Title: "Meen Curry"}, catalog())

	require.Equal(t, len(kerala), len(meen))
	for i := range kerala {
		assert.Equal(t, kerala[i].Recipe.Title, meen[i].Recipe.Title)
		assert.Equal(t, kerala[i].PairingScore, meen[i].PairingScore)
	}
}

func TestSuggestPairings_UnknownDishReturnsEmpty(t *testing.T) {
	service := NewPairingService()

	assert.Empty(t, service.SuggestPairingsForMain(domain.Recipe{Title: "Pasta Carbonara"}, catalog()))
	assert.Empty(t, service.SuggestPairingsForCurry(domain.Recipe{Title: "Pasta Carbonara"}, catalog()))
}

func TestIsMainDishAndIsCurry(t *testing.T) {
	service := NewPairingService()

	assert.True(t, service.IsMainDish(domain.Recipe{Title: "Matta Rice"}))
	assert.False(t, service.IsMainDish(domain.Recipe{Title: "Meen Curry"}))
	assert.True(t, service.IsCurry(domain.Recipe{Title: "Meen Curry"}))
	assert.True(t, service.IsCurry(domain.Recipe{Title: "Vegetable Stew"}))

	// Pairing hints authored with the recipe act as a fallback.
	assert.True(t, service.IsMainDish(domain.Recipe{Title: "Breakfast Special", CompatibleCurries: []string{"sambar"}}))
	assert.True(t, service.IsCurry(domain.Recipe{Title: "House Gravy", CompatibleMains: []string{"rice"}}))

	// Ambiguous titles satisfy both classifications.
	both := domain.Recipe{Title: "Rice and Sambar"}
	assert.True(t, service.IsMainDish(both))
	assert.True(t, service.IsCurry(both))
}

func TestSuggestCompleteMeal_MainTakesPriority(t *testing.T) {
	service := NewPairingService()

	res := service.SuggestCompleteMeal(domain.Recipe{Title: "Appam"}, catalog())
	require.NotNil(t, res.Main)
	assert.Nil(t, res.Curry)
	assert.NotEmpty(t, res.Suggestions)

	res = service.SuggestCompleteMeal(domain.Recipe{Title: "Meen Curry"}, catalog())
	require.NotNil(t, res.Curry)
	assert.Nil(t, res.Main)
	assert.NotEmpty(t, res.Suggestions)

	res = service.SuggestCompleteMeal(domain.Recipe{Title: "Fruit Salad"}, catalog())
	assert.Nil(t, res.Main)
	assert.Nil(t, res.Curry)
	assert.Empty(t, res.Suggestions)
}

func TestGetTimingAdvice(t *testing.T) {
	service := NewPairingService()

	single := []domain.Recipe{{Title: "Appam", PrepMinutes: 30, CookMinutes: 20}}
	assert.Equal(t, "Total time: 50 minutes", service.GetTimingAdvice(single))

	pair := []domain.Recipe{
		{Title: "Appam", PrepMinutes: 30, CookMinutes: 20},
		{Title: "Vegetable Stew", PrepMinutes: 15, CookMinutes: 25},
	}
	assert.Equal(t,
		"Prep all ingredients first (45 min), then cook in parallel. Total time: ~70 minutes",
		service.GetTimingAdvice(pair))

	assert.Equal(t, "", service.GetTimingAdvice(nil))
}
