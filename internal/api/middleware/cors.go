package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedCORSDomains []string) gin.HandlerFunc {
	var domains []string
	for _, domain := range allowedCORSDomains {
		domains = append(domains, strings.TrimSpace(domain))
	}

	return cors.New(cors.Config{
		AllowOrigins:     domains,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
