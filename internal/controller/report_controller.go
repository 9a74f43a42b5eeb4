package controller

import (
	"fmt"
	"net/http"

	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
	ChildService  *service.ChildService
}

func NewReportController(reportService *service.ReportService, childService *service.ChildService) *ReportController {
	return &ReportController{ReportService: reportService, ChildService: childService}
}

func (c *ReportController) ownedChild(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	childID := util.MustParseUint(ctx.Param("childId"))
	if _, err := c.ChildService.Get(claims.UserID, childID); err != nil {
		respondError(ctx, err)
		return 0, false
	}
	return childID, true
}

// Progress godoc
// @Summary Per-assignment progress report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Success 200 {object} util.Response{data=[]model.ChildProgressRow}
// @Router /api/children/{childId}/reports/progress [get]
func (c *ReportController) Progress(ctx *gin.Context) {
	childID, ok := c.ownedChild(ctx)
	if !ok {
		return
	}
	rows, err := c.ReportService.ProgressRows(childID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Coverage godoc
// @Summary Curriculum coverage report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Success 200 {object} util.Response{data=[]model.CoverageRow}
// @Router /api/children/{childId}/reports/coverage [get]
func (c *ReportController) Coverage(ctx *gin.Context) {
	childID, ok := c.ownedChild(ctx)
	if !ok {
		return
	}
	rows, err := c.ReportService.CoverageRows(childID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// ProgressCSV godoc
// @Summary Download the progress report as CSV
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Param childId path int true "child id"
// @Success 200 {string} string "CSV body"
// @Router /api/children/{childId}/reports/progress.csv [get]
func (c *ReportController) ProgressCSV(ctx *gin.Context) {
	childID, ok := c.ownedChild(ctx)
	if !ok {
		return
	}
	export, err := c.ReportService.ExportProgressCSV(childID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	serveExport(ctx, export)
}

// CoverageCSV godoc
// @Summary Download the coverage report as CSV
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Param childId path int true "child id"
// @Success 200 {string} string "CSV body"
// @Router /api/children/{childId}/reports/coverage.csv [get]
func (c *ReportController) CoverageCSV(ctx *gin.Context) {
	childID, ok := c.ownedChild(ctx)
	if !ok {
		return
	}
	export, err := c.ReportService.ExportCoverageCSV(childID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	serveExport(ctx, export)
}

func serveExport(ctx *gin.Context, export *service.ExportResult) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	ctx.Data(http.StatusOK, export.ContentType, export.Data)
}
