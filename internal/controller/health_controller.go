package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// Check godoc
// @Summary Liveness and dependency health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	result := gin.H{"status": "ok"}
	code := http.StatusOK

	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if sqlDB, err := c.DB.DB(); err != nil {
		result["database"] = err.Error()
		code = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(checkCtx); err != nil {
		result["database"] = err.Error()
		code = http.StatusServiceUnavailable
	} else {
		result["database"] = "up"
	}

	if err := c.Redis.Ping(checkCtx).Err(); err != nil {
		result["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	} else {
		result["redis"] = "up"
	}

	if code != http.StatusOK {
		result["status"] = "degraded"
	}
	ctx.JSON(code, result)
}
