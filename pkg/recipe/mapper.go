package recipe

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
)

// toDomainRecipe decodes the JSON columns of a stored recipe. Decoding is
// defensive: a corrupt column leaves that field empty instead of failing
// the whole record.
func toDomainRecipe(entity *entities.Recipe) domain.Recipe {
	recipe := domain.Recipe{
		ID:                 entity.ID.String(),
		Title:              entity.Title,
		Region:             entity.Region,
		PrepMinutes:        entity.PrepMinutes,
		CookMinutes:        entity.CookMinutes,
		Servings:           entity.Servings,
		CaloriesPerServing: entity.CaloriesPerServing,
		Notes:              entity.Notes,
		ImageURL:           entity.ImageURL,
		CreatedAt:          entity.CreatedAt,
	}

	_ = json.Unmarshal([]byte(entity.Tags), &recipe.Tags)
	_ = json.Unmarshal([]byte(entity.Ingredients), &recipe.Ingredients)
	_ = json.Unmarshal([]byte(entity.Steps), &recipe.Steps)
	_ = json.Unmarshal([]byte(entity.CompatibleMains), &recipe.CompatibleMains)
	_ = json.Unmarshal([]byte(entity.CompatibleCurries), &recipe.CompatibleCurries)

	return recipe
}

func toRecipeEntity(req domain.AddRecipeRequest) (*entities.Recipe, error) {
	tags, err := marshalOrEmptyArray(req.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := marshalOrEmptyArray(req.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := marshalOrEmptyArray(req.Steps)
	if err != nil {
		return nil, err
	}
	mains, err := marshalOrEmptyArray(req.CompatibleMains)
	if err != nil {
		return nil, err
	}
	curries, err := marshalOrEmptyArray(req.CompatibleCurries)
	if err != nil {
		return nil, err
	}

	return &entities.Recipe{
		ID:                 uuid.New(),
		Title:              req.Title,
		Region:             req.Region,
		Tags:               tags,
		Ingredients:        ingredients,
		Steps:              steps,
		PrepMinutes:        req.PrepMinutes,
		CookMinutes:        req.CookMinutes,
		Servings:           req.Servings,
		CaloriesPerServing: req.CaloriesPerServing,
		CompatibleMains:    mains,
		CompatibleCurries:  curries,
		Notes:              req.Notes,
	}, nil
}

func marshalOrEmptyArray(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}
