package controller

import (
	"errors"
	"net/http"

	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinels to HTTP statuses; anything unmapped is
// logged and returned as 500 so internals never leak to the client.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrChildNotFound),
		errors.Is(err, util.ErrAssignmentNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrPackageNotFound),
		errors.Is(err, util.ErrObjectiveNotFound),
		errors.Is(err, util.ErrCollectibleNotFound),
		errors.Is(err, util.ErrImportJobNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidPIN):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrAlreadyUnlocked),
		errors.Is(err, util.ErrInsufficientCoins),
		errors.Is(err, util.ErrPackageDeleted),
		errors.Is(err, util.ErrImportJobFinished),
		errors.Is(err, util.ErrEmptyImportResult):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// requireChild resolves the acting child: a kid token acts as itself, a
// parent token must name a child it owns via the :childId route param.
func requireChild(ctx *gin.Context) (uint, *util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, nil, false
	}
	if claims.ChildID != 0 {
		return claims.ChildID, claims, true
	}
	childID := util.MustParseUint(ctx.Param("childId"))
	if childID == 0 {
		util.BadRequest(ctx, "missing child id")
		return 0, nil, false
	}
	return childID, claims, true
}
