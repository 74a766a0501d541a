package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"legalaid/models"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key under which the authenticated actor is set.
const ActorKey = "actor"

// ActorFrom returns the authenticated actor, if any. The zero actor means the
// request was unauthenticated (possible on optional-auth routes).
func ActorFrom(c *gin.Context) models.Actor {
	if v, ok := c.Get(ActorKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}

// JWTAuthMiddleware validates the bearer token, caches the validation result
// in Redis keyed by token hash, and sets the actor on the request context.
// With optional set, unauthenticated requests pass through with no actor:
// the notification feed endpoints tolerate anonymous callers and degrade to
// an empty response instead of failing.
func JWTAuthMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		actor, err := utils.ExtractActorFromToken(tokenString)
		if err != nil || actor.ID == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// Record the validated token hash so revocation checks stay cheap.
		cacheKey := utils.AuthCachePrefix + actor.ID
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			_ = authCache.Set(ctx, cacheKey, utils.HashToken(tokenString), utils.AuthCacheTTL).Err()
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}
