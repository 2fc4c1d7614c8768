package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vntour/tourismweb/middleware"
	"github.com/vntour/tourismweb/policy"
)

// getActor resolves the authenticated actor placed in context by the auth
// middleware.
func getActor(ctx *gin.Context) (policy.Actor, bool) {
	return middleware.ActorFrom(ctx)
}

func parsePagination(pageStr, sizeStr string) (int, int) {
	page := 1
	pageSize := 10
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
		pageSize = s
	}
	return page, pageSize
}
