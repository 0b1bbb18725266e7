package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/utils/storage"
)

type fakeRecipeRepository struct {
	recipes   map[string]*entities.Recipe
	bookmarks map[string]bool
	history   []*entities.RecipeHistory
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:   map[string]*entities.Recipe{},
		bookmarks: map[string]bool{},
	}
}

func (f *fakeRecipeRepository) AddRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetAllRecipes(_ context.Context) ([]*entities.Recipe, error) {
	recipes := make([]*entities.Recipe, 0, len(f.recipes))
	for _, recipe := range f.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepository) CountRecipes(_ context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepository) BookmarkRecipe(_ context.Context, bookmark *entities.RecipeBookmark) error {
	f.bookmarks[bookmark.RecipeID.String()] = true
	return nil
}

func (f *fakeRecipeRepository) RemoveBookmark(_ context.Context, recipeID string) error {
	delete(f.bookmarks, recipeID)
	return nil
}

func (f *fakeRecipeRepository) GetBookmarkedRecipes(_ context.Context, _, _ int) ([]*entities.Recipe, int64, error) {
	recipes := make([]*entities.Recipe, 0, len(f.bookmarks))
	for id := range f.bookmarks {
		if recipe, ok := f.recipes[id]; ok {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, int64(len(recipes)), nil
}

func (f *fakeRecipeRepository) IsRecipeBookmarked(_ context.Context, recipeID string) (bool, error) {
	return f.bookmarks[recipeID], nil
}

func (f *fakeRecipeRepository) AddRecipeHistory(_ context.Context, history *entities.RecipeHistory) error {
	f.history = append(f.history, history)
	return nil
}

func (f *fakeRecipeRepository) GetRecipeHistory(_ context.Context, _, _ int) ([]*entities.RecipeHistory, int64, error) {
	return f.history, int64(len(f.history)), nil
}

func newTestRecipeService(repo RecipeRepository) RecipeService {
	return NewRecipeService(repo, storage.AwsS3{})
}

func validRecipeRequest(title string) domain.AddRecipeRequest {
	return domain.AddRecipeRequest{
		Title: title,
		Ingredients: []domain.RecipeIngredient{
			{Name: "rice"},
		},
		Steps:    []string{"cook"},
		Servings: 2,
	}
}

func TestAddRecipe_Validation(t *testing.T) {
	service := newTestRecipeService(newFakeRecipeRepository())
	ctx := context.Background()

	_, err := service.AddRecipe(ctx, domain.AddRecipeRequest{
		Ingredients: []domain.RecipeIngredient{{Name: "rice"}},
		Servings:    2,
	})
	assert.ErrorIs(t, err, domain.ErrRecipeTitleRequired)

	_, err = service.AddRecipe(ctx, domain.AddRecipeRequest{
		Title:    "Plain Rice",
		Servings: 2,
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNoIngredients)

	_, err = service.AddRecipe(ctx, domain.AddRecipeRequest{
		Title:       "Plain Rice",
		Ingredients: []domain.RecipeIngredient{{Name: "rice"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidServings)
}

func TestAddRecipe_RoundTrip(t *testing.T) {
	service := newTestRecipeService(newFakeRecipeRepository())
	ctx := context.Background()

	req := validRecipeRequest("Kerala Fish Curry")
	req.Tags = []string{"non-veg", "curry"}
	req.CompatibleMains = []string{"rice", "appam"}

	added, err := service.AddRecipe(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	got, err := service.GetRecipeByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kerala Fish Curry", got.Title)
	assert.Equal(t, []string{"non-veg", "curry"}, got.Tags)
	assert.Equal(t, []string{"rice", "appam"}, got.CompatibleMains)
	assert.Len(t, got.Ingredients, 1)
}

func TestGetRecipeByID_NotFound(t *testing.T) {
	service := newTestRecipeService(newFakeRecipeRepository())

	_, err := service.GetRecipeByID(context.Background(), "b2f7c8aa-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestImportRecipesJSON_CollectsPerRecordErrors(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := newTestRecipeService(repo)

	result := service.ImportRecipesJSON(context.Background(), domain.ImportRecipesRequest{
		Recipes: []domain.AddRecipeRequest{
			validRecipeRequest("Puttu"),
			{Title: "", Servings: 2},
			validRecipeRequest("Sambar"),
		},
	})

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "recipe 2")
	assert.Len(t, repo.recipes, 2)
}

func TestImportRecipesJSON_AllInvalid(t *testing.T) {
	service := newTestRecipeService(newFakeRecipeRepository())

	result := service.ImportRecipesJSON(context.Background(), domain.ImportRecipesRequest{
		Recipes: []domain.AddRecipeRequest{
			{Title: "No Ingredients", Servings: 1},
		},
	})

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Failed)
}

func TestJSONTemplate_ImportsCleanly(t *testing.T) {
	service := newTestRecipeService(newFakeRecipeRepository())

	result := service.ImportRecipesJSON(context.Background(), domain.ImportRecipesRequest{
		Recipes: service.JSONTemplate(),
	})

	assert.True(t, result.Success)
	assert.Zero(t, result.Failed)
}

func TestSeedRecipes_OnlyOnEmptyCatalog(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := newTestRecipeService(repo)
	ctx := context.Background()

	require.NoError(t, service.SeedRecipes(ctx))
	seeded := len(repo.recipes)
	assert.Greater(t, seeded, 0)

	// A second run must not duplicate the catalog.
	require.NoError(t, service.SeedRecipes(ctx))
	assert.Equal(t, seeded, len(repo.recipes))
}

func TestBookmarkLifecycle(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := newTestRecipeService(repo)
	ctx := context.Background()

	added, err := service.AddRecipe(ctx, validRecipeRequest("Appam"))
	require.NoError(t, err)

	require.NoError(t, service.BookmarkRecipe(ctx, domain.BookmarkRecipeRequest{RecipeID: added.ID}))
	// Bookmarking twice is a no-op, not an error.
	require.NoError(t, service.BookmarkRecipe(ctx, domain.BookmarkRecipeRequest{RecipeID: added.ID}))

	bookmarked, count, err := service.GetBookmarkedRecipes(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, bookmarked, 1)
	assert.True(t, bookmarked[0].IsBookmarked)

	require.NoError(t, service.RemoveBookmark(ctx, domain.BookmarkRecipeRequest{RecipeID: added.ID}))
	_, count, err = service.GetBookmarkedRecipes(ctx, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkAsCookedRecordsHistory(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := newTestRecipeService(repo)
	ctx := context.Background()

	added, err := service.AddRecipe(ctx, validRecipeRequest("Rasam"))
	require.NoError(t, err)

	require.NoError(t, service.MarkAsCooked(ctx, domain.MarkAsCookedRequest{RecipeID: added.ID}))

	history, err := service.GetRecipeHistory(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), history.Total)
}

func TestMarkAsCooked_UnknownRecipe(t *testing.T) {
	service := newTestRecipeService(newFakeRecipeRepository())

	err := service.MarkAsCooked(context.Background(), domain.MarkAsCookedRequest{
		RecipeID: "b2f7c8aa-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
