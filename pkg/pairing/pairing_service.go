package pairing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
)

const unweightedPairingScore = 0.5

type (
	// PairingService recommends traditional dish combinations from a static
	// rule table. Stateless; all methods are pure over their inputs.
	PairingService interface {
		SuggestPairingsForMain(main domain.Recipe, catalog []domain.Recipe) []domain.PairingSuggestion
		SuggestPairingsForCurry(curry domain.Recipe, catalog []domain.Recipe) []domain.PairingSuggestion
		SuggestCompleteMeal(recipe domain.Recipe, catalog []domain.Recipe) domain.CompleteMealResponse
		IsMainDish(recipe domain.Recipe) bool
		IsCurry(recipe domain.Recipe) bool
		GetTimingAdvice(recipes []domain.Recipe) string
	}

	pairingService struct{}
)

func NewPairingService() PairingService {
	return &pairingService{}
}

var trailingQualifier = regexp.MustCompile(`\s+(curry|stew|roast)\s*$`)

// normalizeDishName reduces a recipe title to the canonical key used by the
// rule tables: lower case, regional prefixes stripped, trailing qualifier
// spacing collapsed, known variants folded onto their canonical dish.
func normalizeDishName(title string) string {
	name := strings.ToLower(title)
	name = trailingQualifier.ReplaceAllString(name, " $1")
	name = strings.Replace(name, "kerala ", "", 1)
	name = strings.Replace(name, "traditional ", "", 1)
	name = strings.TrimSpace(name)

	if canonical, ok := dishAliases[name]; ok {
		return canonical
	}
	return name
}

// SuggestPairingsForMain returns the curries and sides traditionally served
// with the given main, restricted to dishes present in the catalog. An
// unknown dish yields an empty list, never an error.
func (s *pairingService) SuggestPairingsForMain(main domain.Recipe, catalog []domain.Recipe) []domain.PairingSuggestion {
	rule, ok := mainPairings[normalizeDishName(main.Title)]
	if !ok {
		return []domain.PairingSuggestion{}
	}

	suggestions := make([]domain.PairingSuggestion, 0)
	for _, candidate := range catalog {
		name := normalizeDishName(candidate.Title)
		if !containsName(rule.Curries, name) {
			continue
		}

		score, ok := rule.Score[name]
		if !ok {
			score = unweightedPairingScore
		}

		suggestions = append(suggestions, domain.PairingSuggestion{
			Recipe:       candidate,
			PairingScore: score,
			Reason:       fmt.Sprintf("Traditional pairing with %s", main.Title),
		})
	}

	sortSuggestions(suggestions)
	return suggestions
}

// SuggestPairingsForCurry is the inverse direction: mains that go with the
// given curry.
func (s *pairingService) SuggestPairingsForCurry(curry domain.Recipe, catalog []domain.Recipe) []domain.PairingSuggestion {
	rule, ok := curryPairings[normalizeDishName(curry.Title)]
	if !ok {
		return []domain.PairingSuggestion{}
	}

	suggestions := make([]domain.PairingSuggestion, 0)
	for _, candidate := range catalog {
		name := normalizeDishName(candidate.Title)
		if !containsName(rule.Mains, name) {
			continue
		}

		score, ok := rule.Score[name]
		if !ok {
			score = unweightedPairingScore
		}

		suggestions = append(suggestions, domain.PairingSuggestion{
			Recipe:       candidate,
			PairingScore: score,
			Reason:       fmt.Sprintf("Perfect match for %s", curry.Title),
		})
	}

	sortSuggestions(suggestions)
	return suggestions
}

// SuggestCompleteMeal classifies the selected recipe and suggests the other
// half of the meal. A title matching both heuristics is served as a main;
// the main check runs first.
func (s *pairingService) SuggestCompleteMeal(recipe domain.Recipe, catalog []domain.Recipe) domain.CompleteMealResponse {
	if s.IsMainDish(recipe) {
		main := recipe
		return domain.CompleteMealResponse{
			Main:        &main,
			Suggestions: s.SuggestPairingsForMain(recipe, catalog),
		}
	}

	if s.IsCurry(recipe) {
		curry := recipe
		return domain.CompleteMealResponse{
			Curry:       &curry,
			Suggestions: s.SuggestPairingsForCurry(recipe, catalog),
		}
	}

	return domain.CompleteMealResponse{Suggestions: []domain.PairingSuggestion{}}
}

// IsMainDish matches staple keywords in the title, falling back to the
// pairing hints authored with the recipe. Not mutually exclusive with
// IsCurry; "Rice and Sambar" satisfies both.
func (s *pairingService) IsMainDish(recipe domain.Recipe) bool {
	title := strings.ToLower(recipe.Title)
	for _, keyword := range mainKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return len(recipe.CompatibleCurries) > 0
}

func (s *pairingService) IsCurry(recipe domain.Recipe) bool {
	title := strings.ToLower(recipe.Title)
	for _, keyword := range curryKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return len(recipe.CompatibleMains) > 0
}

// GetTimingAdvice sums prep times and assumes dishes cook in parallel.
func (s *pairingService) GetTimingAdvice(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return ""
	}

	totalPrep := 0
	maxCook := 0
	for _, recipe := range recipes {
		totalPrep += recipe.PrepMinutes
		if recipe.CookMinutes > maxCook {
			maxCook = recipe.CookMinutes
		}
	}

	if len(recipes) == 1 {
		return fmt.Sprintf("Total time: %d minutes", totalPrep+recipes[0].CookMinutes)
	}

	return fmt.Sprintf(
		"Prep all ingredients first (%d min), then cook in parallel. Total time: ~%d minutes",
		totalPrep, totalPrep+maxCook,
	)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func sortSuggestions(suggestions []domain.PairingSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].PairingScore > suggestions[j].PairingScore
	})
}
