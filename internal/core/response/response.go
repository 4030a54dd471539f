// Package response holds the failure payloads shared by every dashboard
// endpoint. Each endpoint family keeps the body shape its clients already
// check for, and the HTTP status tells the error kinds apart.
package response

import (
	"github.com/ketankishore27/inventory-management/internal/middleware"
	custom_error "github.com/ketankishore27/inventory-management/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

func CountFallback() gin.H {
	return gin.H{"count": nil}
}

func BreakdownFallback() gin.H {
	return gin.H{"Mac": nil}
}

func StatusFallback() gin.H {
	return gin.H{"status": StatusFailed}
}

func Success() gin.H {
	return gin.H{"status": StatusSuccess}
}

// Failure logs err against op and aborts with fallback plus the error kind.
func Failure(c *gin.Context, log *zap.Logger, op string, err error, fallback gin.H) {
	kind := custom_error.KindOf(err)
	status := custom_error.HTTPStatus(err)

	log.Error("Error encountered in "+op,
		zap.Error(err),
		zap.String("kind", string(kind)),
		zap.Int("status", status),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)

	fallback["code"] = kind
	c.AbortWithStatusJSON(status, fallback)
}
