package context

import (
	"printshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyActor is the echo.Context key holding the authenticated entity.Actor.
const KeyActor ContextKey = "actor"

// SetActor stores the authenticated caller for handlers further down the chain.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the authenticated caller, if any.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(entity.Actor)
	if !ok || actor.IsZero() {
		return entity.Actor{}, false
	}

	return actor, true
}
