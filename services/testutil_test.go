package services

import (
	"fmt"
	"testing"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{}, &entity.Branch{}, &entity.SiteContent{}, &entity.Application{},
		&entity.IngredientCategory{}, &entity.Ingredient{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemIngredient{},
		&entity.Order{}, &entity.OrderLine{}, &entity.OrderIngredient{},
		&entity.SavedBurger{},
	))
	return db
}

type testEnv struct {
	db       *gorm.DB
	carts    *CartService
	sessions *SessionService
	orders   *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	savedRepo := repository.NewSavedBurgerRepository(db)

	return &testEnv{
		db:       db,
		carts:    NewCartService(db, cartRepo, catalogRepo, ingRepo),
		sessions: NewSessionService(db, cartRepo),
		orders:   NewOrderService(db, orderRepo, cartRepo, savedRepo, ingRepo, nil),
	}
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Price: price, Category: "Burgerler"}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func seedIngredient(t *testing.T, db *gorm.DB, catID uint, name string, price float64) *entity.Ingredient {
	t.Helper()
	i := entity.Ingredient{
		IngredientCategoryID: catID,
		Name:                 name,
		Price:                price,
		IsAvailable:          true,
	}
	require.NoError(t, db.Create(&i).Error)
	return &i
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.IngredientCategory {
	t.Helper()
	c := entity.IngredientCategory{Name: name, MinSelect: 0, MaxSelect: 5}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func newSessionCart(t *testing.T, env *testEnv, table int) string {
	t.Helper()
	out, err := env.sessions.Resolve(&ResolveIn{TableNo: &table})
	require.NoError(t, err)
	return out.Cart.SessionToken
}
