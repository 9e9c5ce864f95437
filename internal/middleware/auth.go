package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/model"
	"tax-practice-management/pkg/response"
)

const scopeKey = "auth.scope"

// Auth validates the bearer token and stores the caller's scope in the
// gin context under scopeKey.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.bearerScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// bearerScope verifies the request's bearer token and returns the caller's
// scope. Shared with the cache middleware, which runs before Auth and must
// never serve entries to callers it cannot attribute to a firm.
func (m Middleware) bearerScope(c *gin.Context) (model.Scope, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return model.Scope{}, false
	}

	payload, err := m.jwtManager.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware: token rejected: %v", err)
		return model.Scope{}, false
	}

	return model.Scope{
		UserID: payload.UserID,
		FirmID: payload.FirmID,
		Role:   payload.Role,
	}, true
}

// GetScope extracts the authenticated scope set by Auth. The second return
// is false on routes that skipped the middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
