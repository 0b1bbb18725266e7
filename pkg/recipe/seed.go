package recipe

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
)

func intPtr(v int) *int { return &v }

func amount(v float64) *float64 { return &v }

// JSONTemplate returns the sample payload served to users preparing a bulk
// import file.
func (s *recipeService) JSONTemplate() []domain.AddRecipeRequest {
	return []domain.AddRecipeRequest{
		{
			Title:  "Traditional Appam",
			Region: "Kerala",
			Tags:   []string{"veg", "breakfast", "fermented"},
			Ingredients: []domain.RecipeIngredient{
				{Name: "rice", Amount: amount(2), Unit: "cups"},
				{Name: "coconut", Amount: amount(1), Unit: "cup"},
				{Name: "coconut milk", Amount: amount(0.5), Unit: "cup"},
				{Name: "sugar", Amount: amount(1), Unit: "tsp"},
				{Name: "yeast", Amount: amount(0.5), Unit: "tsp"},
				{Name: "salt", Amount: amount(0.5), Unit: "tsp"},
			},
			Steps: []string{
				"Soak rice for 4-5 hours",
				"Grind rice and coconut with little water to smooth batter",
				"Add coconut milk, sugar, yeast and salt",
				"Ferment overnight in warm place",
				"Heat appam pan, pour batter and swirl to form bowl shape",
				"Cover and cook until edges are golden and center is soft",
			},
			PrepMinutes:        30,
			CookMinutes:        20,
			Servings:           4,
			CaloriesPerServing: intPtr(180),
			CompatibleCurries:  []string{"vegetable stew", "fish curry", "chicken curry", "egg roast"},
			Notes:              "Best served hot with stew or curry",
		},
		{
			Title:  "Kerala Fish Curry",
			Region: "Kerala",
			Tags:   []string{"non-veg", "curry", "spicy"},
			Ingredients: []domain.RecipeIngredient{
				{Name: "fish", Amount: amount(500), Unit: "g"},
				{Name: "coconut milk", Amount: amount(1), Unit: "cup"},
				{Name: "tamarind", Amount: amount(1), Unit: "tbsp"},
				{Name: "onion", Amount: amount(1), Unit: "pcs"},
				{Name: "green chili", Amount: amount(3), Unit: "pcs"},
				{Name: "curry leaves", Amount: amount(15), Unit: "pcs"},
				{Name: "coconut oil", Amount: amount(3), Unit: "tbsp"},
			},
			Steps: []string{
				"Clean and cut fish into pieces",
				"Heat oil in clay pot, add curry leaves",
				"Add sliced onion, ginger, garlic, green chili",
				"Add spice powders, saute until fragrant",
				"Add tamarind juice, bring to boil",
				"Add fish pieces gently, cook for 5 minutes",
				"Pour coconut milk, simmer until fish is done",
			},
			PrepMinutes:        15,
			CookMinutes:        25,
			Servings:           4,
			CaloriesPerServing: intPtr(280),
			CompatibleMains:    []string{"rice", "appam", "puttu", "porotta"},
			Notes:              "Use fresh fish and clay pot for authentic taste",
		},
	}
}

var seedRecipes = []domain.AddRecipeRequest{
	{
		Title:  "Matta Rice",
		Region: "Kerala",
		Tags:   []string{"veg", "staple"},
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Amount: amount(2), Unit: "cups"},
			{Name: "salt", Amount: amount(0.5), Unit: "tsp", Optional: true},
		},
		Steps: []string{
			"Wash rice until water runs clear",
			"Boil with plenty of water until grains are soft",
			"Drain and serve hot",
		},
		PrepMinutes:       5,
		CookMinutes:       35,
		Servings:          4,
		CompatibleCurries: []string{"sambar", "rasam", "fish curry", "chicken curry", "thoran"},
	},
	{
		Title:  "Puttu",
		Region: "Kerala",
		Tags:   []string{"veg", "breakfast", "steamed"},
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice", Amount: amount(2), Unit: "cups"},
			{Name: "coconut", Amount: amount(1), Unit: "cup"},
			{Name: "salt", Amount: amount(0.5), Unit: "tsp", Optional: true},
		},
		Steps: []string{
			"Moisten rice flour with salted water to a crumbly texture",
			"Layer flour and grated coconut in the puttu maker",
			"Steam for 5-7 minutes until cooked through",
		},
		PrepMinutes:       10,
		CookMinutes:       10,
		Servings:          3,
		CompatibleCurries: []string{"kadala curry", "fish curry", "vegetable stew"},
	},
	{
		Title:  "Kadala Curry",
		Region: "Kerala",
		Tags:   []string{"veg", "curry"},
		Ingredients: []domain.RecipeIngredient{
			{Name: "black chickpeas", Amount: amount(1), Unit: "cup"},
			{Name: "coconut", Amount: amount(0.5), Unit: "cup"},
			{Name: "onion", Amount: amount(1), Unit: "pcs"},
			{Name: "coconut oil", Amount: amount(2), Unit: "tbsp"},
			{Name: "curry leaves", Amount: amount(10), Unit: "pcs"},
			{Name: "garam masala", Amount: amount(1), Unit: "tsp", Optional: true},
		},
		Steps: []string{
			"Soak chickpeas overnight and pressure cook until soft",
			"Roast coconut with spices and grind to a paste",
			"Saute onion in coconut oil with curry leaves",
			"Add paste and chickpeas, simmer until thick",
		},
		PrepMinutes:     20,
		CookMinutes:     30,
		Servings:        4,
		CompatibleMains: []string{"puttu", "appam", "rice"},
	},
	{
		Title:  "Vegetable Stew",
		Region: "Kerala",
		Tags:   []string{"veg", "stew", "mild"},
		Ingredients: []domain.RecipeIngredient{
			{Name: "mixed vegetables", Amount: amount(2), Unit: "cups"},
			{Name: "coconut milk", Amount: amount(1.5), Unit: "cups"},
			{Name: "ginger", Amount: amount(1), Unit: "tsp"},
			{Name: "green chili", Amount: amount(2), Unit: "pcs"},
			{Name: "curry leaves", Amount: amount(10), Unit: "pcs"},
			{Name: "coconut oil", Amount: amount(1), Unit: "tbsp"},
		},
		Steps: []string{
			"Simmer vegetables in thin coconut milk with ginger and chili",
			"Add thick coconut milk once vegetables are tender",
			"Finish with curry leaves and a spoon of coconut oil",
		},
		PrepMinutes:     15,
		CookMinutes:     20,
		Servings:        4,
		CompatibleMains: []string{"appam", "idiyappam", "puttu"},
	},
	{
		Title:  "Sambar",
		Region: "Kerala",
		Tags:   []string{"veg", "curry", "lentil"},
		Ingredients: []domain.RecipeIngredient{
			{Name: "toor dal", Amount: amount(1), Unit: "cup"},
			{Name: "sambar powder", Amount: amount(2), Unit: "tbsp"},
			{Name: "tamarind", Amount: amount(1), Unit: "tbsp"},
			{Name: "mixed vegetables", Amount: amount(1), Unit: "cup"},
			{Name: "mustard seeds", Amount: amount(1), Unit: "tsp"},
			{Name: "curry leaves", Amount: amount(10), Unit: "pcs", Optional: true},
		},
		Steps: []string{
			"Pressure cook dal until mushy",
			"Boil vegetables with tamarind water and sambar powder",
			"Combine with dal and simmer",
			"Temper mustard seeds and curry leaves in hot oil, pour over",
		},
		PrepMinutes:     15,
		CookMinutes:     30,
		Servings:        6,
		CompatibleMains: []string{"rice", "dosa", "idli"},
	},
}

// SeedRecipes loads the starter catalog on first run. A non-empty catalog
// is left untouched.
func (s *recipeService) SeedRecipes(ctx context.Context) error {
	count, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := append(s.JSONTemplate(), seedRecipes...)
	for _, seed := range seeds {
		if _, err := s.AddRecipe(ctx, seed); err != nil {
			log.Errorf("error seeding recipe %q: %v", seed.Title, err)
		}
	}

	return nil
}
