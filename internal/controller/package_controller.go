package controller

import (
	"strconv"

	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	PackageService *service.PackageService
	ChildService   *service.ChildService
	AuthService    *service.AuthService
}

func NewPackageController(packageService *service.PackageService, childService *service.ChildService, authService *service.AuthService) *PackageController {
	return &PackageController{
		PackageService: packageService,
		ChildService:   childService,
		AuthService:    authService,
	}
}

// Create godoc
// @Summary Create a problem package
// @Description Every problem is validated up front; malformed multiple choice is rejected with 400
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PackageRequest true "package payload"
// @Success 201 {object} util.Response{data=model.Package}
// @Failure 400 {object} util.Response "validation failure, message names the offending problem"
// @Router /api/packages [post]
func (c *PackageController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req service.PackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	owner, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	pkg, err := c.PackageService.Create(owner, req)
	if err != nil {
		// problem validation errors carry their position, useful to the client
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, pkg)
}

// List godoc
// @Summary List packages visible to the caller
// @Description Own packages plus global ones, optionally filtered by grade and subject
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param gradeLevel query int false "grade filter"
// @Param subject query string false "subject filter"
// @Success 200 {object} util.Response{data=[]model.Package}
// @Router /api/packages [get]
func (c *PackageController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	owner, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	grade, _ := strconv.Atoi(ctx.Query("gradeLevel"))
	packages, err := c.PackageService.List(owner, grade, ctx.Query("subject"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, packages)
}

// Get godoc
// @Summary Fetch one package with its problems
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "package id"
// @Success 200 {object} util.Response{data=model.Package}
// @Failure 404 {object} util.Response
// @Router /api/packages/{id} [get]
func (c *PackageController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	caller, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	pkg, err := c.PackageService.Get(caller, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, pkg)
}

// Delete godoc
// @Summary Soft-delete a package
// @Description Dependent assignments and their answers are removed; the package row stays for history
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "package id"
// @Success 200 {object} util.Response
// @Router /api/packages/{id} [delete]
func (c *PackageController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	caller, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.PackageService.Delete(caller, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type assignRequest struct {
	ChildID uint `json:"childId" binding:"required"`
}

// Assign godoc
// @Summary Assign a package to a child
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "package id"
// @Param body body assignRequest true "target child"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Router /api/packages/{id}/assign [post]
func (c *PackageController) Assign(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req assignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	caller, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if _, err := c.ChildService.Get(claims.UserID, req.ChildID); err != nil {
		respondError(ctx, err)
		return
	}
	a, err := c.PackageService.Assign(caller, util.MustParseUint(ctx.Param("id")), req.ChildID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}
