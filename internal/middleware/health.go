package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	startTime = time.Now()
	Version   = "1.0.0"
)

// HealthCheckMiddleware reports process uptime and database reachability.
func HealthCheckMiddleware(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := HealthStatus{
			Status:      "ok",
			Database:    "ok",
			LastChecked: time.Now(),
			Uptime:      time.Since(startTime).Round(time.Second).String(),
			Version:     Version,
		}

		code := http.StatusOK
		if err := db.Ping(ctx); err != nil {
			status.Status = "degraded"
			status.Database = err.Error()
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, status)
	}
}

// AppWorking answers the dashboard's liveness probe.
func AppWorking(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "app working as expected"})
}
