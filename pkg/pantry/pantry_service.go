package pantry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/utils/mailing"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/matching"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/scanner"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, category string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		GetInventorySnapshot(ctx context.Context) ([]domain.FoodItem, error)
		IngestScan(ctx context.Context, req domain.IngestScanRequest) (domain.IngestScanResponse, error)
		GetScanRecord(ctx context.Context, id string) (domain.ScanRecordResponse, error)
		GenerateShoppingList(req domain.ShoppingListRequest) []domain.ShoppingListItem
		EmailShoppingList(ctx context.Context, req domain.EmailShoppingListRequest) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		scannerService   scanner.ScannerService
		matchingService  matching.MatchingService
	}
)

func NewPantryService(
	pantryRepository PantryRepository,
	scannerService scanner.ScannerService,
	matchingService matching.MatchingService,
) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		scannerService:   scannerService,
		matchingService:  matchingService,
	}
}

func (s *pantryService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	if req.Quantity != nil && *req.Quantity < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	category := req.Category
	if !domain.IsValidCategory(category) {
		category = domain.CategoryOther
	}

	foodItem := &entities.FoodItem{
		ID:       uuid.New(),
		Name:     req.Name,
		Category: category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Source:   domain.SourceManual,
	}

	if err := s.pantryRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *pantryService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error {
	foodItem, err := s.pantryRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}

	if req.Category != "" && domain.IsValidCategory(req.Category) {
		foodItem.Category = req.Category
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		foodItem.Quantity = req.Quantity
	}

	if req.Unit != "" {
		foodItem.Unit = req.Unit
	}

	return s.pantryRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *pantryService) DeleteFoodItem(ctx context.Context, id string) error {
	if _, err := s.pantryRepository.GetFoodItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	return s.pantryRepository.DeleteFoodItem(ctx, id)
}

func (s *pantryService) GetFoodItems(ctx context.Context, category string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.pantryRepository.GetFoodItems(ctx, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, count, nil
}

func (s *pantryService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.pantryRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

// GetInventorySnapshot returns the current inventory in the shape the
// matching engine consumes. Callers refresh this before every match run.
func (s *pantryService) GetInventorySnapshot(ctx context.Context) ([]domain.FoodItem, error) {
	foodItems, err := s.pantryRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make([]domain.FoodItem, 0, len(foodItems))
	for _, item := range foodItems {
		snapshot = append(snapshot, domain.FoodItem{
			ID:       item.ID.String(),
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}

	return snapshot, nil
}

// IngestScan parses recognized receipt text, stores the scan record and
// merges the parsed items into the inventory. Quantities add onto existing
// items with the same name (case-insensitive); unseen items are created
// with category Other.
func (s *pantryService) IngestScan(ctx context.Context, req domain.IngestScanRequest) (domain.IngestScanResponse, error) {
	if strings.TrimSpace(req.RecognizedText) == "" {
		return domain.IngestScanResponse{}, domain.ErrEmptyScanText
	}

	parsedItems := s.scannerService.ParseReceiptText(req.RecognizedText)

	status := "Processed"
	if len(parsedItems) == 0 {
		status = "Empty"
	}

	parsedJSON, err := json.Marshal(parsedItems)
	if err != nil {
		return domain.IngestScanResponse{}, err
	}

	scan := &entities.ScanRecord{
		ID:             uuid.New(),
		RecognizedText: req.RecognizedText,
		ParsedItems:    string(parsedJSON),
		Status:         status,
	}

	if err := s.pantryRepository.CreateScanRecord(ctx, scan); err != nil {
		return domain.IngestScanResponse{}, err
	}

	scanID := scan.ID.String()
	merged := 0
	added := 0

	for _, item := range parsedItems {
		existing, err := s.pantryRepository.GetFoodItemByName(ctx, item.Name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.IngestScanResponse{}, err
			}

			foodItem := &entities.FoodItem{
				ID:           uuid.New(),
				Name:         item.Name,
				Category:     domain.CategoryOther,
				Quantity:     item.Quantity,
				Unit:         item.Unit,
				Source:       domain.SourceScanned,
				ScanRecordID: &scanID,
			}
			if err := s.pantryRepository.AddFoodItem(ctx, foodItem); err != nil {
				return domain.IngestScanResponse{}, err
			}
			added++
			continue
		}

		if item.Quantity != nil {
			current := 0.0
			if existing.Quantity != nil {
				current = *existing.Quantity
			}
			total := current + *item.Quantity
			existing.Quantity = &total
		}
		if item.Unit != "" {
			existing.Unit = item.Unit
		}

		if err := s.pantryRepository.UpdateFoodItem(ctx, existing); err != nil {
			return domain.IngestScanResponse{}, err
		}
		merged++
	}

	return domain.IngestScanResponse{
		ScanID:      scanID,
		Status:      status,
		ParsedItems: parsedItems,
		MergedItems: merged,
		AddedItems:  added,
	}, nil
}

func (s *pantryService) GetScanRecord(ctx context.Context, id string) (domain.ScanRecordResponse, error) {
	scan, err := s.pantryRepository.GetScanRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanRecordResponse{}, domain.ErrScanRecordNotFound
		}
		return domain.ScanRecordResponse{}, err
	}

	var parsedItems []domain.ParsedLineItem
	if scan.ParsedItems != "" {
		// A corrupt stored payload degrades to an empty item list.
		_ = json.Unmarshal([]byte(scan.ParsedItems), &parsedItems)
	}

	return domain.ScanRecordResponse{
		ID:             scan.ID.String(),
		RecognizedText: scan.RecognizedText,
		Status:         scan.Status,
		ParsedItems:    parsedItems,
		CreatedAt:      scan.CreatedAt,
	}, nil
}

func (s *pantryService) GenerateShoppingList(req domain.ShoppingListRequest) []domain.ShoppingListItem {
	return s.matchingService.GenerateShoppingList(req.MissingItems)
}

// EmailShoppingList categorizes the missing items and mails them as a
// simple HTML list.
func (s *pantryService) EmailShoppingList(ctx context.Context, req domain.EmailShoppingListRequest) error {
	list := s.matchingService.GenerateShoppingList(req.MissingItems)

	var body strings.Builder
	body.WriteString("<h3>Your shopping list</h3><ul>")
	for _, entry := range list {
		body.WriteString(fmt.Sprintf("<li>%s <i>(%s)</i></li>", entry.Item, entry.Category))
	}
	body.WriteString("</ul>")

	return mailing.SendMail(req.Email, "KeralaKitchen shopping list", body.String())
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Source:    item.Source,
		CreatedAt: item.CreatedAt,
	}
}
