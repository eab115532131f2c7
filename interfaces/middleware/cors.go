package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	apiAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	apiAllowHeaders = []string{"Content-Type", "Authorization"}
)

// CORS answers cross-origin requests under /api from any origin
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              apiAllowMethods,
		AllowHeaders:              apiAllowHeaders,
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})
}

// APIHeaders attaches the CORS headers whether or not the request carries an Origin,
// and ends OPTIONS requests with an empty 200.
func APIHeaders() gin.HandlerFunc {
	methods := strings.Join(apiAllowMethods, ", ")
	headers := strings.Join(apiAllowHeaders, ", ")
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", methods)
		ctx.Header("Access-Control-Allow-Headers", headers)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusOK)
		}
	}
}
