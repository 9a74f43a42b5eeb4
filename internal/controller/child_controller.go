package controller

import (
	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChildController struct {
	ChildService *service.ChildService
	AuthService  *service.AuthService
}

func NewChildController(childService *service.ChildService, authService *service.AuthService) *ChildController {
	return &ChildController{ChildService: childService, AuthService: authService}
}

func (c *ChildController) parent(ctx *gin.Context) (*util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, false
	}
	return claims, true
}

// Create godoc
// @Summary Add a child to the family
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ChildRequest true "child payload"
// @Success 201 {object} util.Response{data=model.Child}
// @Failure 400 {object} util.Response
// @Router /api/children [post]
func (c *ChildController) Create(ctx *gin.Context) {
	claims, ok := c.parent(ctx)
	if !ok {
		return
	}
	var req service.ChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	parent, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	child, err := c.ChildService.Create(parent, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, child)
}

// List godoc
// @Summary List the caller's children
// @Tags children
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Child}
// @Router /api/children [get]
func (c *ChildController) List(ctx *gin.Context) {
	claims, ok := c.parent(ctx)
	if !ok {
		return
	}
	children, err := c.ChildService.ListByParent(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, children)
}

// Get godoc
// @Summary Fetch one child
// @Tags children
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Success 200 {object} util.Response{data=model.Child}
// @Failure 404 {object} util.Response
// @Router /api/children/{childId} [get]
func (c *ChildController) Get(ctx *gin.Context) {
	claims, ok := c.parent(ctx)
	if !ok {
		return
	}
	child, err := c.ChildService.Get(claims.UserID, util.MustParseUint(ctx.Param("childId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, child)
}

// Update godoc
// @Summary Update a child's profile or PIN
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Param body body service.ChildRequest true "child payload"
// @Success 200 {object} util.Response{data=model.Child}
// @Router /api/children/{childId} [put]
func (c *ChildController) Update(ctx *gin.Context) {
	claims, ok := c.parent(ctx)
	if !ok {
		return
	}
	var req service.ChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	parent, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	child, err := c.ChildService.Update(parent, util.MustParseUint(ctx.Param("childId")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, child)
}

// Delete godoc
// @Summary Remove a child and everything attached to it
// @Tags children
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Success 200 {object} util.Response
// @Router /api/children/{childId} [delete]
func (c *ChildController) Delete(ctx *gin.Context) {
	claims, ok := c.parent(ctx)
	if !ok {
		return
	}
	parent, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.ChildService.Delete(parent, util.MustParseUint(ctx.Param("childId"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
