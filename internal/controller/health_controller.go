package controller

import (
	"context"
	"net/http"
	"time"

	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthController struct {
	Client *mongo.Client
}

func NewHealthController(client *mongo.Client) *HealthController {
	return &HealthController{Client: client}
}

// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.Client.Ping(pingCtx, nil); err != nil {
		util.Fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
