package http

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"shortlink/shortlink/internal/config"
	"shortlink/shortlink/internal/handler"
	"shortlink/shortlink/internal/repo"
	"shortlink/shortlink/internal/service"
)

func NewServer(cfg config.Config, db *sql.DB, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	rp := repo.NewPostgres(db)
	sv := service.NewLinks(rp)
	h := handler.New(cfg, sv, logger)

	r.GET("/", h.Health)
	r.GET("/:code", h.Redirect)

	api := r.Group("/api")
	api.POST("/shorten", RateLimit(cfg.RateLimit), h.Shorten)
	api.GET("/stats/:code", h.Stats)
	api.GET("/qr/:code", h.QR)
	api.GET("/debug/urls", h.DebugURLs)

	return r
}
