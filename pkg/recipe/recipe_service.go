package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/utils/storage"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error)
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		ImportRecipesJSON(ctx context.Context, req domain.ImportRecipesRequest) domain.ImportResult
		JSONTemplate() []domain.AddRecipeRequest
		SeedRecipes(ctx context.Context) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error)

		BookmarkRecipe(ctx context.Context, req domain.BookmarkRecipeRequest) error
		RemoveBookmark(ctx context.Context, req domain.BookmarkRecipeRequest) error
		GetBookmarkedRecipes(ctx context.Context, page, limit int) ([]domain.Recipe, int64, error)
		MarkAsCooked(ctx context.Context, req domain.MarkAsCookedRequest) error
		GetRecipeHistory(ctx context.Context, page, limit int) (domain.RecipeHistoryResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// GetAllRecipes returns the decoded catalog. A record whose JSON columns
// fail to decode still appears with what could be read; one bad row never
// hides the rest of the catalog.
func (s *recipeService) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	stored, err := s.recipeRepository.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(stored))
	for _, entity := range stored {
		recipes = append(recipes, toDomainRecipe(entity))
	}
	return recipes, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}

	recipe := toDomainRecipe(entity)

	isBookmarked, err := s.recipeRepository.IsRecipeBookmarked(ctx, id)
	if err == nil {
		recipe.IsBookmarked = isBookmarked
	}

	return recipe, nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.Recipe, error) {
	if err := validateRecipeRequest(req); err != nil {
		return domain.Recipe{}, err
	}

	entity, err := toRecipeEntity(req)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := s.recipeRepository.AddRecipe(ctx, entity); err != nil {
		return domain.Recipe{}, err
	}

	return toDomainRecipe(entity), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if entity.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(entity.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// ImportRecipesJSON imports a batch, collecting per-record errors instead
// of aborting. The import is a success if at least one recipe landed.
func (s *recipeService) ImportRecipesJSON(ctx context.Context, req domain.ImportRecipesRequest) domain.ImportResult {
	result := domain.ImportResult{Errors: []string{}}

	for i, recipeReq := range req.Recipes {
		if _, err := s.AddRecipe(ctx, recipeReq); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("recipe %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	result.Success = result.Imported > 0
	return result
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error) {
	entity, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("recipe-%s", entity.ID.String())
	var objectKey string
	var uploadErr error

	if entity.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(entity.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	entity.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, entity); err != nil {
		return "", err
	}

	return entity.ImageURL, nil
}

func (s *recipeService) BookmarkRecipe(ctx context.Context, req domain.BookmarkRecipeRequest) error {
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	alreadyBookmarked, err := s.recipeRepository.IsRecipeBookmarked(ctx, req.RecipeID)
	if err != nil {
		return err
	}
	if alreadyBookmarked {
		return nil
	}

	return s.recipeRepository.BookmarkRecipe(ctx, &entities.RecipeBookmark{
		ID:        uuid.New(),
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	})
}

func (s *recipeService) RemoveBookmark(ctx context.Context, req domain.BookmarkRecipeRequest) error {
	return s.recipeRepository.RemoveBookmark(ctx, req.RecipeID)
}

func (s *recipeService) GetBookmarkedRecipes(ctx context.Context, page, limit int) ([]domain.Recipe, int64, error) {
	stored, count, err := s.recipeRepository.GetBookmarkedRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	recipes := make([]domain.Recipe, 0, len(stored))
	for _, entity := range stored {
		recipe := toDomainRecipe(entity)
		recipe.IsBookmarked = true
		recipes = append(recipes, recipe)
	}

	return recipes, count, nil
}

func (s *recipeService) MarkAsCooked(ctx context.Context, req domain.MarkAsCookedRequest) error {
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.AddRecipeHistory(ctx, &entities.RecipeHistory{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		CookedAt: time.Now(),
	})
}

func (s *recipeService) GetRecipeHistory(ctx context.Context, page, limit int) (domain.RecipeHistoryResponse, error) {
	entries, count, err := s.recipeRepository.GetRecipeHistory(ctx, page, limit)
	if err != nil {
		return domain.RecipeHistoryResponse{}, err
	}

	response := domain.RecipeHistoryResponse{
		Entries: make([]domain.RecipeHistoryEntry, 0, len(entries)),
		Total:   count,
	}
	for _, entry := range entries {
		historyEntry := domain.RecipeHistoryEntry{CookedAt: entry.CookedAt}
		if entry.Recipe != nil {
			historyEntry.Recipe = toDomainRecipe(entry.Recipe)
		}
		response.Entries = append(response.Entries, historyEntry)
	}

	return response, nil
}

func validateRecipeRequest(req domain.AddRecipeRequest) error {
	if req.Title == "" {
		return domain.ErrRecipeTitleRequired
	}
	if len(req.Ingredients) == 0 {
		return domain.ErrRecipeNoIngredients
	}
	if req.Servings < 1 {
		return domain.ErrInvalidServings
	}
	return nil
}
