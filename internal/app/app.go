package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"physics_master_backend/internal/config"
	"physics_master_backend/internal/controller"
	"physics_master_backend/internal/repository"
	"physics_master_backend/internal/service"
	"physics_master_backend/pkg/database"
	"physics_master_backend/pkg/logger"
	"physics_master_backend/pkg/monitoring"
	"physics_master_backend/pkg/security"
	"physics_master_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	exam *service.ExamService
}

// ApplyExamConfig pushes reloaded paper settings into the running exam
// service.
func (a *App) ApplyExamConfig(e config.ExamConfig) {
	a.exam.SetExamConfig(e)
	logger.Log.Info("Exam config reloaded",
		zap.Int("sample_size", e.SampleSize),
		zap.Float64("sample_total_marks", e.SampleTotalMarks),
		zap.Float64("full_total_marks", e.FullTotalMarks))
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	attempt  *repository.AttemptRepository
	access   *repository.AccessRepository
	material *repository.MaterialRepository
	feedback *repository.FeedbackRepository
}

type services struct {
	auth     *service.AuthService
	exam     *service.ExamService
	payment  *service.PaymentService
	admin    *service.AdminService
	storage  *service.StorageService
	material *service.MaterialService
	feedback *service.FeedbackService
	stats    *service.StatsService
}

type controllers struct {
	auth     *controller.AuthController
	exam     *controller.ExamController
	payment  *controller.PaymentController
	admin    *controller.AdminController
	material *controller.MaterialController
	feedback *controller.FeedbackController
	stats    *controller.StatsController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		question: repository.NewQuestionRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		access:   repository.NewAccessRepository(db),
		material: repository.NewMaterialRepository(db),
		feedback: repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.exam = service.NewExamService(repos.question, repos.attempt, cfg)
	s.payment = service.NewPaymentService(repos.access, cfg)
	s.admin = service.NewAdminService(repos.question, repos.user, repos.attempt, rdb)
	s.material = service.NewMaterialService(repos.material, s.storage, rdb)
	s.feedback = service.NewFeedbackService(repos.feedback)
	s.stats = service.NewStatsService(repos.user, repos.attempt)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		exam:     controller.NewExamController(s.exam),
		payment:  controller.NewPaymentController(s.payment),
		admin:    controller.NewAdminController(s.admin),
		material: controller.NewMaterialController(s.material),
		feedback: controller.NewFeedbackController(s.feedback),
		stats:    controller.NewStatsController(s.stats),
		health:   controller.NewHealthController(db),
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
		maxRequests = 100000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)
	app.exam = services.exam

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("physics-master", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
