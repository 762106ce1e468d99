package webhook

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"docinho/internal/config"
)

func SetupRouter(cfg config.Config, handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.WebhookRateRPS), cfg.WebhookRateBurst)))

	router.GET("/health", handler.Health)
	router.POST("/webhook", handler.Receive)

	return router
}
