package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GustavoLarcoDev/gimnasio/internal/config"
	dbpkg "github.com/GustavoLarcoDev/gimnasio/internal/db"
	"github.com/GustavoLarcoDev/gimnasio/internal/logger"
	"github.com/GustavoLarcoDev/gimnasio/internal/metrics"
	"github.com/GustavoLarcoDev/gimnasio/internal/middleware"
	"github.com/GustavoLarcoDev/gimnasio/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)
	rdb := dbpkg.NewRedis(cfg, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
