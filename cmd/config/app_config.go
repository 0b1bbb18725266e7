package config

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/api/handlers"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/api/routes"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/utils"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/utils/storage"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/cook"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/matching"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/pairing"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/pantry"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/recipe"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/scanner"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	scannerService := scanner.NewScannerService()
	matchingService := matching.NewMatchingService()
	pairingService := pairing.NewPairingService()
	pantryService := pantry.NewPantryService(pantryRepository, scannerService, matchingService)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	cookService := cook.NewCookService(pantryService, recipeService, matchingService, pairingService)

	if err := recipeService.SeedRecipes(context.Background()); err != nil {
		log.Errorf("error seeding recipes: %v", err)
	}

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	cookHandler := handlers.NewCookHandler(cookService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		PantryHandler: pantryHandler,
		RecipeHandler: recipeHandler,
		CookHandler:   cookHandler,
	}
	routesConfig.Setup()
	return app, nil
}
