package configs

import (
	"log"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ seeded admin:", email)
	return nil
}

// SeedSiteContent creates the singleton content row with the same fallback
// text the public pages render when the record is missing.
func SeedSiteContent() error {
	db := DB()
	var count int64
	db.Model(&entity.SiteContent{}).Count(&count)
	if count > 0 {
		return nil
	}
	content := entity.SiteContent{
		HeroTitle:    "Dr. Burger",
		HeroSubtitle: "Kendi burgerini yarat",
		AboutTitle:   "Hakkımızda",
		AboutText:    "El yapımı burgerler, taze malzemeler.",
		FooterText:   "© Dr. Burger",
		ContactPhone: "",
		ContactEmail: "",
		WorkingHours: "11:00 - 23:00",
	}
	return db.Create(&content).Error
}

// SeedCatalog loads a minimal builder catalog on an empty database so the
// wizard is usable out of the box.
func SeedCatalog() error {
	db := DB()
	var count int64
	db.Model(&entity.IngredientCategory{}).Count(&count)
	if count > 0 {
		return nil
	}

	cats := []struct {
		cat  entity.IngredientCategory
		ings []entity.Ingredient
	}{
		{
			cat: entity.IngredientCategory{Name: "Ekmek", NameEn: "Bun", Icon: "🍞", SortOrder: 1, IsRequired: true, MinSelect: 1, MaxSelect: 1},
			ings: []entity.Ingredient{
				{Name: "Klasik Ekmek", Price: 0, Calories: 220, IsAvailable: true, SortOrder: 1},
				{Name: "Brioche", Price: 5, Calories: 260, IsAvailable: true, SortOrder: 2},
			},
		},
		{
			cat: entity.IngredientCategory{Name: "Köfte", NameEn: "Patty", Icon: "🥩", SortOrder: 2, IsRequired: true, MinSelect: 1, MaxSelect: 2},
			ings: []entity.Ingredient{
				{Name: "Dana Köfte", Price: 40, Calories: 310, IsAvailable: true, SortOrder: 1},
				{Name: "Tavuk Köfte", Price: 30, Calories: 240, IsAvailable: true, SortOrder: 2},
			},
		},
		{
			cat: entity.IngredientCategory{Name: "Sos", NameEn: "Sauce", Icon: "🥫", SortOrder: 3, MaxSelect: 3},
			ings: []entity.Ingredient{
				{Name: "Ketçap", Price: 0, Calories: 20, IsAvailable: true, SortOrder: 1},
				{Name: "Mayonez", Price: 0, Calories: 90, IsAvailable: true, SortOrder: 2},
				{Name: "Özel Sos", Price: 5, Calories: 70, IsAvailable: true, SortOrder: 3},
			},
		},
	}

	for _, c := range cats {
		if err := db.Create(&c.cat).Error; err != nil {
			return err
		}
		for i := range c.ings {
			c.ings[i].IngredientCategoryID = c.cat.ID
		}
		if err := db.Create(&c.ings).Error; err != nil {
			return err
		}
	}
	log.Println("✅ seeded builder catalog")
	return nil
}
