package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/services/container"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Container *container.ServiceContainer
	started   time.Time
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container, started: time.Now()}
}

// Ping 健康检查端点
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "pong",
		"status":      "healthy",
		"uptime":      time.Since(h.started).Round(time.Second).String(),
		"subscribers": h.Container.GetEventHub().SubscriberCount(),
	})
}
