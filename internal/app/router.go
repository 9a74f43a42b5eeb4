package app

import (
	"kidslearn_backend/docs"
	"kidslearn_backend/internal/config"
	"kidslearn_backend/internal/middleware"
	"kidslearn_backend/internal/model"
	"kidslearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	// Public: registration, both login flows, and the kid login screen's
	// child picker.
	public := router.Group("/api/auth")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/child-login", c.auth.ChildLogin)
		public.GET("/family/:code/children", middleware.TryAuthMiddleware(cfg), c.auth.FamilyChildren)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authed.GET("/me", c.auth.Me)

		a.registerParentRoutes(authed, c)
		a.registerKidRoutes(authed, c)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/curriculum", c.admin.CreateObjective)
		admin.PUT("/curriculum/:id", c.admin.UpdateObjective)
		admin.GET("/audit", c.admin.AuditLog)
	}
}

func (a *App) registerParentRoutes(g *gin.RouterGroup, c *controllers) {
	parent := g.Group("")
	parent.Use(middleware.RoleMiddleware(model.Parent))
	{
		parent.POST("/children", c.child.Create)
		parent.GET("/children", c.child.List)
		parent.GET("/children/:childId", c.child.Get)
		parent.PUT("/children/:childId", c.child.Update)
		parent.DELETE("/children/:childId", c.child.Delete)

		parent.POST("/packages", c.pkg.Create)
		parent.GET("/packages", c.pkg.List)
		parent.GET("/packages/:id", c.pkg.Get)
		parent.DELETE("/packages/:id", c.pkg.Delete)
		parent.POST("/packages/:id/assign", c.pkg.Assign)

		parent.POST("/assignments", c.assignment.Create)
		parent.GET("/assignments", c.assignment.List)
		parent.PUT("/assignments/reorder", c.assignment.Reorder)
		parent.DELETE("/assignments/:id", c.assignment.Delete)

		parent.GET("/children/:childId/stats", c.stats.Combined)
		parent.GET("/children/:childId/stats/daily", c.stats.Daily)
		parent.GET("/children/:childId/reports/progress", c.report.Progress)
		parent.GET("/children/:childId/reports/coverage", c.report.Coverage)
		parent.GET("/children/:childId/reports/progress.csv", c.report.ProgressCSV)
		parent.GET("/children/:childId/reports/coverage.csv", c.report.CoverageCSV)
		parent.GET("/children/:childId/shop", c.shop.Catalog)
		parent.GET("/children/:childId/wallet", c.shop.Wallet)

		parent.POST("/import", c.importer.Create)
		parent.GET("/import", c.importer.List)
		parent.GET("/import/:id", c.importer.Get)
		parent.POST("/import/:id/result", c.importer.AttachResult)
		parent.GET("/import/:id/scan", c.importer.ScanURL)

		parent.GET("/curriculum", c.admin.ListObjectives)
	}
}

func (a *App) registerKidRoutes(g *gin.RouterGroup, c *controllers) {
	kid := g.Group("/kid")
	kid.Use(middleware.RoleMiddleware(model.Kid))
	{
		kid.GET("/assignments", c.assignment.KidList)
		kid.GET("/assignments/:id/questions", c.assignment.Questions)
		kid.POST("/assignments/:id/questions/:questionId/answer", c.assignment.Submit)

		kid.GET("/shop", c.shop.Catalog)
		kid.GET("/wallet", c.shop.Wallet)
		kid.POST("/shop/:id/purchase", c.shop.Purchase)

		kid.GET("/stats", c.stats.Combined)
		kid.GET("/stats/daily", c.stats.Daily)
	}
}
