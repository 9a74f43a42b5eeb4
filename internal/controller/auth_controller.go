package controller

import (
	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService  *service.AuthService
	ChildService *service.ChildService
}

func NewAuthController(authService *service.AuthService, childService *service.ChildService) *AuthController {
	return &AuthController{AuthService: authService, ChildService: childService}
}

// Register godoc
// @Summary Register a parent account
// @Description Creates a parent account and returns a token plus the generated family code
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "registration payload"
// @Success 201 {object} util.Response{data=service.AuthResult}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "email already registered"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.AuthService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// Login godoc
// @Summary Parent login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 404 {object} util.Response "bad credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.AuthService.Login(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ChildLogin godoc
// @Summary Kid login with family code and PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.ChildLoginRequest true "family code, child and PIN"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 401 {object} util.Response "invalid family code or PIN"
// @Router /api/auth/child-login [post]
func (c *AuthController) ChildLogin(ctx *gin.Context) {
	var req service.ChildLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.AuthService.ChildLogin(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// FamilyChildren godoc
// @Summary Children selectable on the kid login screen
// @Description Public cached listing keyed by family code, no PIN material included
// @Tags auth
// @Produce json
// @Param code path string true "family code"
// @Success 200 {object} util.Response{data=[]model.Child}
// @Failure 404 {object} util.Response
// @Router /api/auth/family/{code}/children [get]
func (c *AuthController) FamilyChildren(ctx *gin.Context) {
	children, err := c.ChildService.ListByFamilyCode(ctx.Param("code"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, children)
}

// Me godoc
// @Summary Current account profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	user, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
