package main

import (
	"fmt"
	"log"

	"github.com/huozturk-art/dr.burgerweb-sub000/configs"
	"github.com/huozturk-art/dr.burgerweb-sub000/middlewares"
	"github.com/huozturk-art/dr.burgerweb-sub000/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedSiteContent(); err != nil {
		log.Fatalf("seed site content failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded product/ingredient images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
