package routes

import (
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/builder"
	"github.com/huozturk-art/dr.burgerweb-sub000/configs"
	"github.com/huozturk-art/dr.burgerweb-sub000/controllers"
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/middlewares"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"
	"github.com/huozturk-art/dr.burgerweb-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// free-tier databases idle out; a trivial read keeps them warm
	r.GET("/keepalive", func(c *gin.Context) {
		var count int64
		if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
			c.JSON(500, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	savedRepo := repository.NewSavedBurgerRepository(db)
	contentRepo := repository.NewContentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Realtime kitchen feed
	hub := ws.NewKitchenHub()
	go hub.Run()

	// Builder sessions live in memory; abandoned ones are swept after 2h
	builderStore := builder.NewStore(2 * time.Hour)
	go builderStore.Run()

	// Services
	sessionSvc := services.NewSessionService(db, cartRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, ingRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, savedRepo, ingRepo, hub)
	reportSvc := services.NewReportService(reportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(catalogRepo, ingRepo, contentRepo)
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	builderCtrl := controllers.NewBuilderController(builderStore, ingRepo, savedRepo, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	kitchenCtrl := controllers.NewKitchenController(orderSvc, orderRepo)
	favoriteCtrl := controllers.NewFavoriteController(savedRepo)
	productCtrl := controllers.NewProductController(catalogRepo)
	branchCtrl := controllers.NewBranchController(catalogRepo)
	ingredientCtrl := controllers.NewIngredientController(ingRepo)
	contentCtrl := controllers.NewContentController(contentRepo)
	appCtrl := controllers.NewApplicationController(contentRepo)
	reportCtrl := controllers.NewReportController(reportSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/pin", authCtrl.PinLogin)
	}

	// Public storefront
	r.GET("/menu", menuCtrl.Menu)
	r.GET("/branches", menuCtrl.Branches)
	r.GET("/ingredients", menuCtrl.Ingredients)
	r.GET("/content", menuCtrl.Content)
	r.POST("/applications", appCtrl.Apply)
	r.GET("/favorites", favoriteCtrl.Search)

	// Table session + cart
	r.POST("/session", sessionCtrl.Resolve)
	r.GET("/session/:token", sessionCtrl.Get)
	cart := r.Group("/cart/:token")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Burger builder wizard
	b := r.Group("/builder")
	{
		b.POST("", builderCtrl.Start)
		b.GET("/:token", builderCtrl.State)
		b.POST("/:token/toggle", builderCtrl.Toggle)
		b.PATCH("/:token/qty", builderCtrl.UpdateQty)
		b.POST("/:token/next", builderCtrl.Next)
		b.POST("/:token/back", builderCtrl.Back)
		b.POST("/:token/reset", builderCtrl.Reset)
		b.POST("/:token/favorite", builderCtrl.ApplyFavorite)
		b.POST("/:token/submit", builderCtrl.Submit)
	}

	// Checkout + tracking
	r.POST("/orders/checkout/:token", orderCtrl.Checkout)
	r.GET("/orders/:orderNo", orderCtrl.DetailByNo)

	// Kitchen board (kitchen terminal or admin)
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret, "kitchen", "admin"))
	{
		kitchen.GET("/orders", kitchenCtrl.List)
		kitchen.PATCH("/orders/:id/advance", kitchenCtrl.Advance)
		kitchen.PATCH("/orders/:id/cancel", kitchenCtrl.Cancel)
		kitchen.GET("/orders/:id/receipt", kitchenCtrl.Receipt)
	}
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/products", productCtrl.List)
		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.POST("/branches", branchCtrl.Create)
		admin.PATCH("/branches/:id", branchCtrl.Update)
		admin.DELETE("/branches/:id", branchCtrl.Delete)
		admin.GET("/tables/:n/link", branchCtrl.TableLink)

		admin.GET("/ingredient-categories", ingredientCtrl.ListCategories)
		admin.POST("/ingredient-categories", ingredientCtrl.CreateCategory)
		admin.PATCH("/ingredient-categories/:id", ingredientCtrl.UpdateCategory)
		admin.DELETE("/ingredient-categories/:id", ingredientCtrl.DeleteCategory)

		admin.POST("/ingredients", ingredientCtrl.CreateIngredient)
		admin.PATCH("/ingredients/:id", ingredientCtrl.UpdateIngredient)
		admin.DELETE("/ingredients/:id", ingredientCtrl.DeleteIngredient)
		admin.PATCH("/ingredients/:id/availability", ingredientCtrl.SetAvailability)
		admin.PATCH("/ingredients/:id/price", ingredientCtrl.SetPrice)

		admin.PATCH("/content", contentCtrl.Update)

		admin.GET("/applications", appCtrl.List)
		admin.DELETE("/applications/:id", appCtrl.Delete)

		admin.POST("/orders/manual", orderCtrl.CreateManual)
		admin.GET("/reports/summary", reportCtrl.Summary)
		admin.POST("/upload", uploadCtrl.Upload)
	}
}
