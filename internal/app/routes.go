package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(incidents *handlers.IncidentHandler, charges *handlers.ChargeHandler, webhooks *handlers.WebhookHandler) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.Router.POST("/incidents/assessments", incidents.Assess)

	chargeGroup := a.Router.Group("/charges")
	chargeGroup.POST("", charges.CreateCharge)
	chargeGroup.GET("/:id", charges.GetStatus)
	chargeGroup.DELETE("/:id/session", charges.Abandon)

	webhookGroup := a.Router.Group("/webhooks")
	webhookGroup.Use(a.limiter.Middleware(), handlers.WebhookAuth(a.config.Gateway.WebhookToken))
	webhookGroup.POST("/gateway", webhooks.Receive)
}
