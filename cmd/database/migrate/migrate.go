package migration

import (
	"fmt"
	"log"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.ScanRecord{}); err != nil {
		log.Fatalf("Error migrating scan record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeBookmark{}); err != nil {
		log.Fatalf("Error migrating recipe bookmark database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeHistory{}); err != nil {
		log.Fatalf("Error migrating recipe history database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
