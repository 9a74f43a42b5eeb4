package controller

import (
	"encoding/json"
	"strconv"

	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 10 MB is plenty for a phone photo of a worksheet.
const maxScanSize = 10 << 20

type ImportController struct {
	ImportService *service.ImportService
}

func NewImportController(importService *service.ImportService) *ImportController {
	return &ImportController{ImportService: importService}
}

// Create godoc
// @Summary Upload a worksheet scan and start an import job
// @Description Multipart form: the scan file plus subject/grade/package name.
// @Description An optional "problems" field carries the recognized problem list as JSON;
// @Description without it the job waits for a result to be attached.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param scan formData file true "worksheet scan"
// @Param subject formData string true "math, reading or english"
// @Param gradeLevel formData int true "grade level"
// @Param packageName formData string true "name for the draft package"
// @Param problems formData string false "recognized problems as a JSON array"
// @Success 201 {object} util.Response{data=model.ImportJob}
// @Failure 400 {object} util.Response
// @Router /api/import [post]
func (c *ImportController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.ImportJobRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fileHeader, err := ctx.FormFile("scan")
	if err != nil {
		util.BadRequest(ctx, "missing scan file")
		return
	}
	if fileHeader.Size > maxScanSize {
		util.BadRequest(ctx, "scan file too large")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	var problems []service.ProblemRequest
	if raw := ctx.PostForm("problems"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &problems); err != nil {
			util.BadRequest(ctx, "problems field is not a valid JSON array")
			return
		}
	}

	job, err := c.ImportService.CreateJob(
		ctx.Request.Context(),
		claims.UserID,
		req,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		problems,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, job)
}

type attachResultRequest struct {
	Problems []service.ProblemRequest `json:"problems" binding:"required,min=1"`
}

// AttachResult godoc
// @Summary Attach a recognition result and queue materialization
// @Tags import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "job id"
// @Param body body attachResultRequest true "recognized problems"
// @Success 200 {object} util.Response{data=model.ImportJob}
// @Failure 409 {object} util.Response "job already completed"
// @Router /api/import/{id}/result [post]
func (c *ImportController) AttachResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req attachResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	job, err := c.ImportService.AttachResult(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Problems)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// List godoc
// @Summary Recent import jobs of the caller
// @Tags import
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max jobs to return" default(20)
// @Success 200 {object} util.Response{data=[]model.ImportJob}
// @Router /api/import [get]
func (c *ImportController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	jobs, err := c.ImportService.Jobs(claims.UserID, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, jobs)
}

// Get godoc
// @Summary One import job with its status
// @Tags import
// @Produce json
// @Security BearerAuth
// @Param id path string true "job id"
// @Success 200 {object} util.Response{data=model.ImportJob}
// @Failure 404 {object} util.Response
// @Router /api/import/{id} [get]
func (c *ImportController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	job, err := c.ImportService.Job(claims.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// ScanURL godoc
// @Summary Signed download link for the stored scan
// @Tags import
// @Produce json
// @Security BearerAuth
// @Param id path string true "job id"
// @Success 200 {object} util.Response{data=object}
// @Router /api/import/{id}/scan [get]
func (c *ImportController) ScanURL(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	url, err := c.ImportService.ScanURL(ctx.Request.Context(), claims.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
