package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/controller"
	"skill_graph_backend/internal/repository"
	"skill_graph_backend/internal/service"
	"skill_graph_backend/pkg/database"
	"skill_graph_backend/pkg/logger"
	"skill_graph_backend/pkg/monitoring"
	"skill_graph_backend/pkg/security"
	"skill_graph_backend/pkg/tracing"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services        *services
	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	courses service.CourseSource
	users   service.UserSource
	cache   service.SkillGraphCache
}

type services struct {
	skillGraph *service.SkillGraphService
}

type controllers struct {
	skillGraph *controller.SkillGraphController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 将重新加载的配置分发给已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{}

	if cfg.DataSource.Type == config.DataSourceMySQL {
		repos.courses = repository.NewCourseRepository(db)
		repos.users = repository.NewUserRepository(db)
	} else {
		mock := repository.NewMockRepository()
		repos.courses = mock
		repos.users = mock
	}

	if rdb != nil {
		repos.cache = repository.NewSkillGraphCache(rdb, cfg.Cache.TTL())
	}

	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	s.skillGraph = service.NewSkillGraphService(repos.courses, repos.users, repos.cache, cfg.SkillGraph)

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.skillGraph.UpdateSkillGraphConfig(newCfg.SkillGraph)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		skillGraph: controller.NewSkillGraphController(s.skillGraph),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 初始化依赖并注册路由；mysql 数据源与 redis 缓存按配置启用
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("dataSource", cfg.DataSource.Type))

	app := &App{Config: cfg}

	if cfg.DataSource.Type == config.DataSourceMySQL {
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			logger.Log.Error("Failed to initialize database", zap.Error(err))
			return nil, err
		}
		app.DB = db

		if cfg.ForceMigrate || cfg.Server.Mode != "release" {
			if err := database.Migrate(db); err != nil {
				logger.Log.Error("Failed to migrate database", zap.Error(err))
				return nil, err
			}
		}
	}

	if cfg.MigrateOnly {
		return app, nil
	}

	if cfg.Cache.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Error("Failed to initialize redis", zap.Error(err))
			return nil, err
		}
		app.Redis = rdb
	}

	repos := app.initRepositories(cfg, app.DB, app.Redis)
	app.services = app.initServices(repos, cfg)
	controllers := app.initControllers(app.services, app.DB)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	return app, nil
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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	log.Println("Server exiting")
}

// Close 释放 tracer、redis 与数据库连接
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
