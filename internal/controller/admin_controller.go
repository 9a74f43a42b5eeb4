package controller

import (
	"strconv"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController hosts the admin-only surface: curriculum objectives and
// the audit trail. Global package curation goes through the normal package
// endpoints, gated by role there.
type AdminController struct {
	CurriculumRepo *repository.CurriculumRepository
	AuditRepo      *repository.AuditRepository
}

func NewAdminController(curriculumRepo *repository.CurriculumRepository, auditRepo *repository.AuditRepository) *AdminController {
	return &AdminController{CurriculumRepo: curriculumRepo, AuditRepo: auditRepo}
}

type objectiveRequest struct {
	Code        string        `json:"code" binding:"required"`
	Title       string        `json:"title" binding:"required"`
	Subject     model.Subject `json:"subject" binding:"required,oneof=math reading english"`
	GradeLevel  int           `json:"gradeLevel" binding:"required,min=1,max=12"`
	Description string        `json:"description"`
	Enabled     *bool         `json:"enabled"`
}

// ListObjectives godoc
// @Summary Enabled curriculum objectives
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.CurriculumObjective}
// @Router /api/curriculum [get]
func (c *AdminController) ListObjectives(ctx *gin.Context) {
	objectives, err := c.CurriculumRepo.ListEnabled()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, objectives)
}

// CreateObjective godoc
// @Summary Create a curriculum objective
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body objectiveRequest true "objective payload"
// @Success 201 {object} util.Response{data=model.CurriculumObjective}
// @Router /api/admin/curriculum [post]
func (c *AdminController) CreateObjective(ctx *gin.Context) {
	var req objectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	o := &model.CurriculumObjective{
		Code:        req.Code,
		Title:       req.Title,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Description: req.Description,
		Enabled:     true,
	}
	if req.Enabled != nil {
		o.Enabled = *req.Enabled
	}
	if err := c.CurriculumRepo.Create(o); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, o)
}

// UpdateObjective godoc
// @Summary Update a curriculum objective
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "objective id"
// @Param body body objectiveRequest true "objective payload"
// @Success 200 {object} util.Response{data=model.CurriculumObjective}
// @Failure 404 {object} util.Response
// @Router /api/admin/curriculum/{id} [put]
func (c *AdminController) UpdateObjective(ctx *gin.Context) {
	var req objectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	o, err := c.CurriculumRepo.FindByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, util.ErrObjectiveNotFound)
		return
	}
	o.Code = req.Code
	o.Title = req.Title
	o.Subject = req.Subject
	o.GradeLevel = req.GradeLevel
	o.Description = req.Description
	if req.Enabled != nil {
		o.Enabled = *req.Enabled
	}
	if err := c.CurriculumRepo.Update(o); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, o)
}

// AuditLog godoc
// @Summary Recent audit entries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param childId query int false "filter by child"
// @Param limit query int false "max entries" default(100)
// @Success 200 {object} util.Response{data=[]model.AuditEntry}
// @Router /api/admin/audit [get]
func (c *AdminController) AuditLog(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	entries, err := c.AuditRepo.List(util.MustParseUint(ctx.Query("childId")), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
