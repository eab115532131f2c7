package middleware

import (
	"fmt"
	"net/http"

	"media-portal/domain/dto"
	"media-portal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const internalServerError = "Internal Server Error"

// Recovery turns a panic into a 500 JSON body. The panic detail is only exposed in development.
func Recovery(isDevelopment bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		detail := fmt.Sprint(recovered)
		if err, ok := recovered.(error); ok {
			detail = err.Error()
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":  detail,
			"method": ctx.Request.Method,
			"path":   ctx.Request.URL.Path,
		}).Error("Request panicked")

		message := internalServerError
		if isDevelopment {
			message = detail
		}
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   internalServerError,
			Message: message,
		})
	})
}
