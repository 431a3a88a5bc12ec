package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sakhi-safety/emergency_dispatch_system/internal/config"
	v1 "github.com/sakhi-safety/emergency_dispatch_system/internal/handler/http/v1"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/location"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/notifier"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/repository"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/service"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/templates"
	"github.com/sakhi-safety/emergency_dispatch_system/pkg/logger"
	"github.com/sakhi-safety/emergency_dispatch_system/pkg/postgres"
	redisclient "github.com/sakhi-safety/emergency_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/sakhi-safety/emergency_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Dispatch System API
// @version 1.0
// @description Emergency alert dispatch pipeline: location capture, multilingual message construction, contact fan-out, simulated delivery and durable alert history.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Каталог шаблонов: ошибка конфигурации должна быть видна при старте
	catalog := templates.NewCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Template catalog is incomplete: %v", err)
	}

	// Хранилища: Redis, если настроен, иначе память процесса
	var (
		contactRepo service.ContactRepository
		alertRepo   service.AlertRepository
		sink        notifier.Sink
	)

	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		contactRepo = repository.NewRedisContactRepository(redisClient)
		alertRepo = repository.NewRedisAlertRepository(redisClient)

		if cfg.GatewayURL != "" {
			// Доставка через внешний шлюз: очередь в Redis, воркер отправляет
			sink = notifier.NewGatewaySink(redisClient, log)
			gatewayWorker := notifier.NewGatewayWorker(redisClient, log, cfg)
			gatewayWorker.Start(ctx)
		}
	} else {
		log.Warn("REDIS_ADDR is not set, using in-memory storage")
		contactRepo = repository.NewMemoryContactRepository()
		alertRepo = repository.NewMemoryAlertRepository()
	}

	if sink == nil {
		sink = notifier.NewSimulatedSink(cfg.DeliveryDelay, nil, log)
	}

	// Необязательный аудиторский архив в PostgreSQL
	var archive service.AlertArchive
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		archive = repository.NewPostgresAlertArchive(dbpool)
	}

	// Разрешение местоположения: позиция приходит от клиента через API
	reporter := location.NewReportedProvider(cfg.LocationMaxAge)
	resolver := location.NewResolver(reporter, location.NewStubGeocoder(), log)

	// Инициализация сервисов
	contactService := service.NewContactDirectory(contactRepo, log)
	alertService := service.NewAlertDispatcher(contactService, resolver, catalog, sink, alertRepo, archive, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, contactService, reporter, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
