package configs

import (
	"log"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Product{}, &entity.Branch{}, &entity.SiteContent{}, &entity.Application{},
		&entity.IngredientCategory{}, &entity.Ingredient{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemIngredient{},
		&entity.Order{}, &entity.OrderLine{}, &entity.OrderIngredient{},
		&entity.SavedBurger{},
	)
}
