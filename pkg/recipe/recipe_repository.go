package recipe

import (
	"context"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		AddRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		CountRecipes(ctx context.Context) (int64, error)

		BookmarkRecipe(ctx context.Context, bookmark *entities.RecipeBookmark) error
		RemoveBookmark(ctx context.Context, recipeID string) error
		GetBookmarkedRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		IsRecipeBookmarked(ctx context.Context, recipeID string) (bool, error)

		AddRecipeHistory(ctx context.Context, history *entities.RecipeHistory) error
		GetRecipeHistory(ctx context.Context, page, limit int) ([]*entities.RecipeHistory, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) AddRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Order("title asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) BookmarkRecipe(ctx context.Context, bookmark *entities.RecipeBookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *recipeRepository) RemoveBookmark(ctx context.Context, recipeID string) error {
	return r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.RecipeBookmark{}).Error
}

func (r *recipeRepository) GetBookmarkedRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Joins("JOIN recipe_bookmarks ON recipe_bookmarks.recipe_id = recipes.id")

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("recipe_bookmarks.created_at desc").
		Offset(offset).Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) IsRecipeBookmarked(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeBookmark{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddRecipeHistory(ctx context.Context, history *entities.RecipeHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *recipeRepository) GetRecipeHistory(ctx context.Context, page, limit int) ([]*entities.RecipeHistory, int64, error) {
	var entries []*entities.RecipeHistory
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.RecipeHistory{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Preload("Recipe").
		Order("cooked_at desc").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}
