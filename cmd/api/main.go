package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tallermotors/autoservice-api/internal/cache"
	"github.com/tallermotors/autoservice-api/internal/config"
	dbpkg "github.com/tallermotors/autoservice-api/internal/db"
	"github.com/tallermotors/autoservice-api/internal/middleware"
	"github.com/tallermotors/autoservice-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	c := cache.New(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, c)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
