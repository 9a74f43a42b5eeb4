package controller

import (
	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	ChildService      *service.ChildService
	AuthService       *service.AuthService
}

func NewAssignmentController(assignmentService *service.AssignmentService, childService *service.ChildService, authService *service.AuthService) *AssignmentController {
	return &AssignmentController{
		AssignmentService: assignmentService,
		ChildService:      childService,
		AuthService:       authService,
	}
}

// Create godoc
// @Summary Create a quick assignment with embedded questions
// @Description The pre-package shape: questions live on the assignment itself
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateAssignmentRequest true "assignment payload"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Router /api/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req service.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := c.ChildService.Get(claims.UserID, req.ChildID); err != nil {
		respondError(ctx, err)
		return
	}
	parent, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	a, err := c.AssignmentService.CreateLegacy(parent, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, a)
}

// List godoc
// @Summary List assignments created by the caller
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param childId query int false "filter by child"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if childID := util.MustParseUint(ctx.Query("childId")); childID != 0 {
		if _, err := c.ChildService.Get(claims.UserID, childID); err != nil {
			respondError(ctx, err)
			return
		}
		list, err := c.AssignmentService.ListForChild(childID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, list)
		return
	}
	list, err := c.AssignmentService.ListForParent(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

type reorderRequest struct {
	OrderedIDs []uint `json:"orderedIds" binding:"required,min=1"`
}

// Reorder godoc
// @Summary Reorder the caller's assignments
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body reorderRequest true "assignment ids in the new order"
// @Success 200 {object} util.Response
// @Router /api/assignments/reorder [put]
func (c *AssignmentController) Reorder(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.AssignmentService.Reorder(claims.UserID, req.OrderedIDs); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete an assignment and its answers
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.AssignmentService.Delete(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// KidList godoc
// @Summary Assignments for the logged-in child
// @Tags kid
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/kid/assignments [get]
func (c *AssignmentController) KidList(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.ChildID == 0 {
		util.Forbidden(ctx)
		return
	}
	list, err := c.AssignmentService.ListForChild(claims.ChildID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Questions godoc
// @Summary Question list for one assignment, answers withheld
// @Description Corrupted multiple-choice questions come back flagged answerable=false
// @Tags kid
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/kid/assignments/{id}/questions [get]
func (c *AssignmentController) Questions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.ChildID == 0 {
		util.Forbidden(ctx)
		return
	}
	a, questions, err := c.AssignmentService.Questions(claims.ChildID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"assignment": a,
		"questions":  questions,
	})
}

type submitRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// Submit godoc
// @Summary Submit an answer
// @Description Scores the answer, pays out coins, advances the streak and assignment status atomically
// @Tags kid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param questionId path int true "question id"
// @Param body body submitRequest true "submitted answer"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 404 {object} util.Response "unknown question"
// @Router /api/kid/assignments/{id}/questions/{questionId}/answer [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.ChildID == 0 {
		util.Forbidden(ctx)
		return
	}
	var req submitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.AssignmentService.Submit(
		claims.ChildID,
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("questionId")),
		req.Answer,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
