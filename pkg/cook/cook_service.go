package cook

import (
	"context"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/matching"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/pairing"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/pantry"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/recipe"
)

type (
	// CookService answers "what can I cook right now". It pulls a fresh
	// inventory snapshot on every call so results track pantry edits.
	CookService interface {
		GetSuggestions(ctx context.Context, threshold float64) (domain.CookSuggestionsResponse, error)
		GetPairings(ctx context.Context, recipeID string) ([]domain.PairingSuggestion, error)
		GetCompleteMeal(ctx context.Context, recipeID string) (domain.CompleteMealResponse, error)
	}

	cookService struct {
		pantryService   pantry.PantryService
		recipeService   recipe.RecipeService
		matchingService matching.MatchingService
		pairingService  pairing.PairingService
	}
)

func NewCookService(
	pantryService pantry.PantryService,
	recipeService recipe.RecipeService,
	matchingService matching.MatchingService,
	pairingService pairing.PairingService,
) CookService {
	return &cookService{
		pantryService:   pantryService,
		recipeService:   recipeService,
		matchingService: matchingService,
		pairingService:  pairingService,
	}
}

// GetSuggestions matches the full catalog against the current inventory and
// buckets the results. A threshold of zero means the default near-match cut.
func (s *cookService) GetSuggestions(ctx context.Context, threshold float64) (domain.CookSuggestionsResponse, error) {
	if threshold < 0 || threshold > 1 {
		return domain.CookSuggestionsResponse{}, domain.ErrInvalidThreshold
	}

	recipes, err := s.recipeService.GetAllRecipes(ctx)
	if err != nil {
		return domain.CookSuggestionsResponse{}, err
	}

	inventory, err := s.pantryService.GetInventorySnapshot(ctx)
	if err != nil {
		return domain.CookSuggestionsResponse{}, err
	}

	results := s.matchingService.MatchRecipesToInventory(recipes, inventory)

	return domain.CookSuggestionsResponse{
		CookNow:        s.matchingService.GetCookNowRecipes(results),
		NearMatch:      s.matchingService.GetNearMatchRecipes(results, threshold),
		TotalRecipes:   len(recipes),
		InventoryItems: len(inventory),
	}, nil
}

// GetPairings suggests companions for a catalog recipe. A recipe that is
// neither a recognizable main nor a curry gets an empty list.
func (s *cookService) GetPairings(ctx context.Context, recipeID string) ([]domain.PairingSuggestion, error) {
	selected, err := s.recipeService.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.recipeService.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	if s.pairingService.IsMainDish(selected) {
		return s.pairingService.SuggestPairingsForMain(selected, catalog), nil
	}
	if s.pairingService.IsCurry(selected) {
		return s.pairingService.SuggestPairingsForCurry(selected, catalog), nil
	}

	return []domain.PairingSuggestion{}, nil
}

// GetCompleteMeal builds a main-plus-curry plan around the selected recipe
// and attaches timing advice for the pair.
func (s *cookService) GetCompleteMeal(ctx context.Context, recipeID string) (domain.CompleteMealResponse, error) {
	selected, err := s.recipeService.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.CompleteMealResponse{}, err
	}

	catalog, err := s.recipeService.GetAllRecipes(ctx)
	if err != nil {
		return domain.CompleteMealResponse{}, err
	}

	meal := s.pairingService.SuggestCompleteMeal(selected, catalog)

	if len(meal.Suggestions) > 0 {
		companion := meal.Suggestions[0].Recipe
		if meal.Main != nil {
			meal.Curry = &companion
		} else if meal.Curry != nil {
			meal.Main = &companion
		}
	}

	dishes := []domain.Recipe{selected}
	if meal.Main != nil && meal.Main.ID != selected.ID {
		dishes = append(dishes, *meal.Main)
	}
	if meal.Curry != nil && meal.Curry.ID != selected.ID {
		dishes = append(dishes, *meal.Curry)
	}
	meal.TimingAdvice = s.pairingService.GetTimingAdvice(dishes)

	return meal, nil
}
