package handlers

import (
	"momslove/services"

	"github.com/gin-gonic/gin"
)

// actorFromContext rebuilds the service-layer actor from the claims the auth
// middleware stored on the request context.
func actorFromContext(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, ok := c.Get("user_id"); ok {
		actor.ID = v.(uint)
	}
	if v, ok := c.Get("user_name"); ok {
		actor.Name = v.(string)
	}
	if v, ok := c.Get("user_email"); ok {
		actor.Email = v.(string)
	}
	if v, ok := c.Get("role"); ok {
		actor.Role = v.(string)
	}
	return actor
}
