package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessImportRecipes   = "recipe import finished"
	MessageSuccessBookmarkRecipe  = "recipe bookmarked successfully"
	MessageSuccessRemoveBookmark  = "bookmark removed successfully"
	MessageSuccessGetBookmarks    = "bookmarked recipes retrieved successfully"
	MessageSuccessMarkAsCooked    = "recipe marked as cooked successfully"
	MessageSuccessGetHistory      = "recipe history retrieved successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedAddRecipe       = "failed to add recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedImportRecipes   = "failed to import recipes"
	MessageFailedBookmarkRecipe  = "failed to bookmark recipe"
	MessageFailedRemoveBookmark  = "failed to remove bookmark"
	MessageFailedGetBookmarks    = "failed to retrieve bookmarked recipes"
	MessageFailedMarkAsCooked    = "failed to mark recipe as cooked"
	MessageFailedGetHistory      = "failed to retrieve recipe history"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeTitleRequired = errors.New("recipe title is required")
	ErrRecipeNoIngredients = errors.New("recipe has no ingredients")
	ErrInvalidServings     = errors.New("servings must be a positive integer")
)

type (
	RecipeIngredient struct {
		Name     string   `json:"name" validate:"required"`
		Amount   *float64 `json:"amount,omitempty"`
		Unit     string   `json:"unit,omitempty"`
		Optional bool     `json:"optional"`
	}

	// Recipe is the catalog record consumed by the matching and pairing
	// engines. Nested collections are already decoded from storage.
	Recipe struct {
		ID                 string             `json:"id"`
		Title              string             `json:"title"`
		Region             string             `json:"region"`
		Tags               []string           `json:"tags"`
		Ingredients        []RecipeIngredient `json:"ingredients"`
		Steps              []string           `json:"steps"`
		PrepMinutes        int                `json:"prep_minutes"`
		CookMinutes        int                `json:"cook_minutes"`
		Servings           int                `json:"servings"`
		CaloriesPerServing *int               `json:"calories_per_serving,omitempty"`
		CompatibleMains    []string           `json:"compatible_mains"`
		CompatibleCurries  []string           `json:"compatible_curries"`
		Notes              string             `json:"notes,omitempty"`
		ImageURL           string             `json:"image_url,omitempty"`
		IsBookmarked       bool               `json:"is_bookmarked,omitempty"`
		CreatedAt          time.Time          `json:"created_at,omitempty"`
	}

	AddRecipeRequest struct {
		Title              string             `json:"title" validate:"required"`
		Region             string             `json:"region" validate:"omitempty"`
		Tags               []string           `json:"tags"`
		Ingredients        []RecipeIngredient `json:"ingredients" validate:"required,dive"`
		Steps              []string           `json:"steps" validate:"required"`
		PrepMinutes        int                `json:"prep_minutes" validate:"min=0"`
		CookMinutes        int                `json:"cook_minutes" validate:"min=0"`
		Servings           int                `json:"servings" validate:"required,min=1"`
		CaloriesPerServing *int               `json:"calories_per_serving,omitempty"`
		CompatibleMains    []string           `json:"compatible_mains"`
		CompatibleCurries  []string           `json:"compatible_curries"`
		Notes              string             `json:"notes,omitempty"`
	}

	ImportRecipesRequest struct {
		Recipes []AddRecipeRequest `json:"recipes" validate:"required"`
	}

	ImportResult struct {
		Success  bool     `json:"success"`
		Imported int      `json:"imported"`
		Failed   int      `json:"failed"`
		Errors   []string `json:"errors"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	BookmarkRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	MarkAsCookedRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	RecipeHistoryEntry struct {
		Recipe   Recipe    `json:"recipe"`
		CookedAt time.Time `json:"cooked_at"`
	}

	RecipeHistoryResponse struct {
		Entries []RecipeHistoryEntry `json:"entries"`
		Total   int64                `json:"total"`
	}
)
