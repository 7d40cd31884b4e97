package server

import (
	"errors"
	"net/http"
	"time"

	"auction-engine/internal/auth"
	"auction-engine/services/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// ActorMiddleware resolves the caller identity from the X-User-ID header
// against the identity collaborator. Authentication itself happens upstream;
// this layer only refuses requests with no resolvable actor.
func ActorMiddleware(ident auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader("X-User-ID")
		if actorID == "" {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing X-User-ID header"), "missing caller identity")
			c.Abort()
			return
		}
		if _, err := ident.GetUser(actorID); err != nil {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("unknown caller identity"), "unknown caller identity")
			c.Abort()
			return
		}
		c.Set(helpers.ActorKey, actorID)
		c.Next()
	}
}
