package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ActorIDKey = "actor_id"

// ActorMiddleware extracts the acting user from the X-Actor-ID header.
// Authorization happens upstream of this service; the header only identifies
// who to credit in the audit log.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("X-Actor-ID"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				c.Set(ActorIDKey, id)
			}
		}
		c.Next()
	}
}

// GetActorID returns the acting user's id, or nil for system-initiated calls
func GetActorID(c *gin.Context) *uuid.UUID {
	if v, ok := c.Get(ActorIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return &id
		}
	}
	return nil
}
