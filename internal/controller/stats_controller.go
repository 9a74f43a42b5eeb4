package controller

import (
	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/scoring"
	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
	ChildService *service.ChildService
}

func NewStatsController(statsService *service.StatsService, childService *service.ChildService) *StatsController {
	return &StatsController{StatsService: statsService, ChildService: childService}
}

// effectiveChild resolves whose stats are being read: a kid token reads its
// own, a parent token names one of its children in the route.
func (c *StatsController) effectiveChild(ctx *gin.Context) (uint, bool) {
	childID, claims, ok := requireChild(ctx)
	if !ok {
		return 0, false
	}
	if claims.ChildID == 0 {
		if _, err := c.ChildService.Get(claims.UserID, childID); err != nil {
			respondError(ctx, err)
			return 0, false
		}
	}
	return childID, true
}

func parsePeriod(ctx *gin.Context) (scoring.Period, bool) {
	period, err := scoring.ParsePeriod(ctx.DefaultQuery("period", "all"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return "", false
	}
	return period, true
}

// Combined godoc
// @Summary Combined per-subject stats for a child
// @Description Merges package answers and legacy embedded answers over the selected period
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Param period query string false "7d, 30d or all" default(all)
// @Success 200 {object} util.Response{data=model.CombinedStats}
// @Router /api/children/{childId}/stats [get]
func (c *StatsController) Combined(ctx *gin.Context) {
	childID, ok := c.effectiveChild(ctx)
	if !ok {
		return
	}
	period, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	stats, err := c.StatsService.Combined(childID, period)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Daily godoc
// @Summary Per-date stats for one subject
// @Description Calendar-date buckets across both storage shapes; inactive dates are omitted
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param childId path int true "child id"
// @Param subject query string true "math or reading"
// @Param period query string false "7d, 30d or all" default(all)
// @Success 200 {object} util.Response{data=[]model.DailyStats}
// @Router /api/children/{childId}/stats/daily [get]
func (c *StatsController) Daily(ctx *gin.Context) {
	childID, ok := c.effectiveChild(ctx)
	if !ok {
		return
	}
	period, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	subject := model.Subject(ctx.Query("subject"))
	if subject != model.SubjectMath && subject != model.SubjectReading {
		util.BadRequest(ctx, "subject must be math or reading")
		return
	}
	daily, err := c.StatsService.CombinedByDate(childID, subject, period)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, daily)
}
