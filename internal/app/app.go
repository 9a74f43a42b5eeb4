package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidslearn_backend/internal/config"
	"kidslearn_backend/internal/controller"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/service"
	"kidslearn_backend/pkg/configwatcher"
	"kidslearn_backend/pkg/database"
	"kidslearn_backend/pkg/logger"
	"kidslearn_backend/pkg/monitoring"
	"kidslearn_backend/pkg/queue"
	"kidslearn_backend/pkg/security"
	"kidslearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services

	stopWorkers     context.CancelFunc
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	child       *repository.ChildRepository
	pkg         *repository.PackageRepository
	assignment  *repository.AssignmentRepository
	answer      *repository.AnswerRepository
	wallet      *repository.WalletRepository
	stats       *repository.StatsRepository
	collectible *repository.CollectibleRepository
	curriculum  *repository.CurriculumRepository
	importJob   *repository.ImportJobRepository
	audit       *repository.AuditRepository
}

type services struct {
	auth        *service.AuthService
	child       *service.ChildService
	pkg         *service.PackageService
	assignment  *service.AssignmentService
	stats       *service.StatsService
	collectible *service.CollectibleService
	report      *service.ReportService
	storage     *service.StorageService
	importer    *service.ImportService
}

type controllers struct {
	auth       *controller.AuthController
	child      *controller.ChildController
	pkg        *controller.PackageController
	assignment *controller.AssignmentController
	stats      *controller.StatsController
	shop       *controller.ShopController
	report     *controller.ReportController
	importer   *controller.ImportController
	admin      *controller.AdminController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// watchConfig hot-reloads the yaml file. Only fields read per request (JWT
// secret, rate limit numbers) take effect; anything baked into a client at
// startup needs a restart.
func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		updated, ok := raw.(*config.Config)
		if !ok {
			return
		}
		a.Config.JWT = updated.JWT
		a.Config.RateLimit = updated.RateLimit
		logger.Log.Info("config reloaded")
		for _, cb := range a.configCallbacks {
			cb(updated)
		}
	})
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		child:       repository.NewChildRepository(db),
		pkg:         repository.NewPackageRepository(db),
		assignment:  repository.NewAssignmentRepository(db),
		answer:      repository.NewAnswerRepository(db),
		wallet:      repository.NewWalletRepository(db),
		stats:       repository.NewStatsRepository(db),
		collectible: repository.NewCollectibleRepository(db),
		curriculum:  repository.NewCurriculumRepository(db),
		importJob:   repository.NewImportJobRepository(db),
		audit:       repository.NewAuditRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, repos.child, cfg)
	s.child = service.NewChildService(repos.child, repos.user, rdb)
	s.pkg = service.NewPackageService(repos.pkg, repos.assignment, repos.curriculum)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.pkg, repos.answer, repos.wallet, rdb, db)
	s.stats = service.NewStatsService(repos.stats, rdb)
	s.collectible = service.NewCollectibleService(repos.collectible, repos.wallet, db)
	s.report = service.NewReportService(repos.assignment, repos.pkg, repos.answer, repos.curriculum, repos.child)

	importQueue := queue.New(rdb, cfg.Import.QueueKey, logger.Log)
	s.importer = service.NewImportService(repos.importJob, repos.pkg, s.storage, importQueue, logger.Log)

	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.child),
		child:      controller.NewChildController(s.child, s.auth),
		pkg:        controller.NewPackageController(s.pkg, s.child, s.auth),
		assignment: controller.NewAssignmentController(s.assignment, s.child, s.auth),
		stats:      controller.NewStatsController(s.stats, s.child),
		shop:       controller.NewShopController(s.collectible, s.child),
		report:     controller.NewReportController(s.report, s.child),
		importer:   controller.NewImportController(s.importer),
		admin:      controller.NewAdminController(repos.curriculum, repos.audit),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startWorkers runs the configured number of import queue consumers. They
// stop when the app shuts down.
func (a *App) startWorkers(cfg *config.Config, rdb *redis.Client, s *services) {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopWorkers = cancel

	for i := 0; i < cfg.Import.Workers; i++ {
		worker := queue.New(rdb, cfg.Import.QueueKey, logger.Log)
		go worker.Run(ctx, s.importer.HandleJob)
	}
	logger.Log.Info("import workers started", zap.Int("count", cfg.Import.Workers))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kidslearn-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)
	app.startWorkers(cfg, rdb, services)
	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	if a.stopWorkers != nil {
		a.stopWorkers()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Log.Info("server exiting")
	logger.Log.Sync()
}
