package api

import (
	"net/http"

	"acoach/coach-api/internal/auth"
	"acoach/coach-api/internal/domain"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "authUser"

// CORSMiddleware attaches permissive CORS headers to every response and
// short-circuits preflight requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// IdentityMiddleware resolves the bearer identity into the request
// context. An unresolvable identity is not fatal here; each handler
// decides whether it requires one.
func IdentityMiddleware(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization")); user != nil {
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

func userFromContext(c *gin.Context) *domain.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}

// requireUser aborts with the 401 envelope when the request carries no
// resolved identity.
func requireUser(c *gin.Context) (*domain.User, bool) {
	user := userFromContext(c)
	if user == nil {
		respondAuthRequired(c)
		return nil, false
	}
	return user, true
}
