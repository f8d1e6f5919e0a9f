package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcotte/inscripto/internal/app/models/dto"
)

// healthProbeTimeout bounds each dependency probe.
const healthProbeTimeout = 3 * time.Second

// CollaboratorChecker reports whether the language-model endpoint answers.
type CollaboratorChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthController reports the liveness of the service and its dependencies.
type HealthController struct {
	db           *pgxpool.Pool
	collaborator CollaboratorChecker
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool, collaborator CollaboratorChecker) *HealthController {
	return &HealthController{
		db:           db,
		collaborator: collaborator,
	}
}

// GetHealth probes the database and the language-model endpoint. The service
// is degraded, not down, when only the collaborator fails; templates still
// render replies.
func (c *HealthController) GetHealth(ctx *gin.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	status := http.StatusOK
	database := "ok"
	if err := c.db.Ping(probeCtx); err != nil {
		database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	collaborator := "ok"
	if err := c.collaborator.HealthCheck(probeCtx); err != nil {
		collaborator = "unreachable"
	}

	overall := "ok"
	if database != "ok" || collaborator != "ok" {
		overall = "degraded"
	}

	ctx.JSON(status, dto.APIResponse{
		Data: gin.H{
			"status":       overall,
			"database":     database,
			"collaborator": collaborator,
		},
		Timestamp: time.Now(),
	})
}
