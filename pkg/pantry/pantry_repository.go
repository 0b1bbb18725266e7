package pantry

import (
	"context"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemByName(ctx context.Context, name string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, category string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error)

		CreateScanRecord(ctx context.Context, scan *entities.ScanRecord) error
		GetScanRecordByID(ctx context.Context, id string) (*entities.ScanRecord, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *pantryRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *pantryRepository) GetFoodItemByName(ctx context.Context, name string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *pantryRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *pantryRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *pantryRepository) GetFoodItems(ctx context.Context, category string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx)
	if category != "all" && category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *pantryRepository) GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).Order("name asc").Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *pantryRepository) CreateScanRecord(ctx context.Context, scan *entities.ScanRecord) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *pantryRepository) GetScanRecordByID(ctx context.Context, id string) (*entities.ScanRecord, error) {
	var scan entities.ScanRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}
