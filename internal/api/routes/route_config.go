package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/api/handlers"
)

type Config struct {
	App           *fiber.App
	PantryHandler handlers.PantryHandler
	RecipeHandler handlers.RecipeHandler
	CookHandler   handlers.CookHandler
}

func (c *Config) Setup() {
	c.App.Use(cors.New())
	c.GuestRoute()
	c.Pantry()
	c.Recipes()
	c.Cook()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry")

	// Basic CRUD operations
	pantry.Post("", c.PantryHandler.AddFoodItem)
	pantry.Get("", c.PantryHandler.GetFoodItems)

	// Special operations; registered before /:id so the static segments win
	pantry.Post("/scan", c.PantryHandler.IngestScan)
	pantry.Get("/scan/:id", c.PantryHandler.GetScanRecord)
	pantry.Post("/shopping-list", c.PantryHandler.GenerateShoppingList)
	pantry.Post("/shopping-list/email", c.PantryHandler.EmailShoppingList)

	pantry.Get("/:id", c.PantryHandler.GetFoodItemDetails)
	pantry.Put("/:id", c.PantryHandler.UpdateFoodItem)
	pantry.Delete("/:id", c.PantryHandler.DeleteFoodItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.AddRecipe)

	recipes.Get("/template", c.RecipeHandler.GetImportTemplate)
	recipes.Post("/import", c.RecipeHandler.ImportRecipes)
	recipes.Post("/image", c.RecipeHandler.UploadRecipeImage)
	recipes.Post("/bookmark", c.RecipeHandler.BookmarkRecipe)
	recipes.Delete("/bookmark", c.RecipeHandler.RemoveBookmark)
	recipes.Get("/bookmarks", c.RecipeHandler.GetBookmarkedRecipes)
	recipes.Post("/cooked", c.RecipeHandler.MarkAsCooked)
	recipes.Get("/history", c.RecipeHandler.GetRecipeHistory)

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Cook() {
	cook := c.App.Group("/api/v1/cook")

	cook.Get("/suggestions", c.CookHandler.GetSuggestions)
	cook.Get("/pairings/:id", c.CookHandler.GetPairings)
	cook.Get("/meal/:id", c.CookHandler.GetCompleteMeal)
}
