package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vntour/tourismweb/utils"
)

// AdminRequired gates moderation routes behind the Admin role. It must run
// after AuthRequired so the role claim is present in context.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor, ok := ActorFrom(ctx)
		if !ok {
			utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
			ctx.Abort()
			return
		}
		if !actor.IsAdmin() {
			utils.Error(ctx, http.StatusForbidden, 40310, "admin access required")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
