package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vntour/tourismweb/policy"
	"github.com/vntour/tourismweb/utils"
)

// respondMissingOnDelete answers a delete whose target row is already gone.
// Content deletes (comments, reviews) report 404 so the client learns the id
// is stale; the admin report queue treats a missing id as already handled and
// answers success.
func respondMissingOnDelete(ctx *gin.Context, alreadyHandled bool, code int, entity string) {
	if alreadyHandled {
		utils.Success(ctx, gin.H{"message": entity + " removed"})
		return
	}
	utils.Error(ctx, http.StatusNotFound, code, entity+" not found")
}

// commentDeleteGate decides a comment delete before any row is touched. When
// allowed is false the handler responds with status/code/message and returns,
// leaving the stored comment as it was. Refusals carry a human-readable
// message.
func commentDeleteGate(actor policy.Actor, ownerID uint) (allowed bool, status, code int, message string) {
	if actor.ID == 0 {
		return false, http.StatusUnauthorized, 40120, "unauthorized"
	}
	if !policy.CanMutate(actor, ownerID, true) {
		return false, http.StatusUnauthorized, 40121, "you do not have permission to perform this action"
	}
	return true, 0, 0, ""
}

// reviewMutationGate decides a review edit or delete. Reviews are owner-only,
// admins included, and refusals stay terse: a bare "forbidden" rather than
// the explanatory message comments get.
func reviewMutationGate(actor policy.Actor, ownerID uint, deniedCode int) (allowed bool, status, code int, message string) {
	if actor.ID == 0 {
		return false, http.StatusUnauthorized, 40110, "unauthorized"
	}
	if !policy.CanMutate(actor, ownerID, false) {
		return false, http.StatusForbidden, deniedCode, "forbidden"
	}
	return true, 0, 0, ""
}
