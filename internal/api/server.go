package api

import (
	"context"

	"catering/internal/app/config"
	"catering/internal/app/dsn"
	"catering/internal/app/handler"
	"catering/internal/app/middleware"
	"catering/internal/app/redis"
	"catering/internal/app/repository"
	"catering/internal/app/storage"
	"catering/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// StartServer собирает все зависимости и запускает HTTP сервер
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка загрузки конфигурации: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	// Redis опционален: без него logout не отзывает токены
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logrus.Warn("Redis недоступен, черный список JWT отключен: ", err)
			redisClient = nil
		}
	}

	// MinIO опционален: без него изображения продуктов не загружаются
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Warn("MinIO недоступен, загрузка изображений отключена: ", err)
			minioClient = nil
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg, repo)

	r := gin.Default()

	// CORS для фронтенда
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	apiHandler.RegisterAPIRoutes(r, authMiddleware)

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := pkg.NewApp(cfg, r)
	app.RunApp()
}
