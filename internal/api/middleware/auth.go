package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/types"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Boss rejects non-boss users. The claim is checked first and the database
// second, so a revoked boss flag takes effect without waiting for the token
// to expire.
func (a *Auth) Boss() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if !claims.IsBoss {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "boss only"})
			return
		}
		emp, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil || !emp.IsBoss || !emp.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "boss only"})
			return
		}
		c.Next()
	}
}

// SelfOrBoss permits the employee in the :id parameter or any boss.
func (a *Auth) SelfOrBoss() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		targetID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
			return
		}
		if claims.UserID == targetID || claims.IsBoss {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// LoggingMiddleware logs requests (placeholder; hook for real logging)
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// CORSMiddleware allows the local frontends used in development.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
