package routes

import (
	"log"
	"strconv"

	_ "enviromaster/docs" // This will be auto-generated
	"enviromaster/internal/adapter/http/handlers"
	repository2 "enviromaster/internal/adapter/persistence/repository"
	appconfig "enviromaster/internal/config"
	"enviromaster/internal/infrastructure/cache"
	"enviromaster/internal/infrastructure/database"
	"enviromaster/internal/infrastructure/storage"
	"enviromaster/internal/usecase"
	"enviromaster/internal/usecase/interfaces"
	"enviromaster/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := pkg.NewLogger(cfg.IsProduction())
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *appconfig.Config, logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(cfg)

	configRepo := repository2.NewServiceConfigDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)

	// Without Redis every config read goes straight to the store, which is
	// still correct, just slower.
	var configCache interfaces.IConfigCache
	if cfg.RedisAddr != "" {
		configCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	} else {
		logger.Warn("REDIS_ADDR not set; config caching disabled")
	}

	var fileStore interfaces.IFileStore
	if cfg.MinioEndpoint != "" {
		store, err := storage.NewMinIOStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			logger.Warn("MinIO store not configured", zap.Error(err))
		} else {
			fileStore = store
		}
	} else {
		logger.Warn("MINIO_ENDPOINT not set; PDF storage disabled")
	}

	configUseCase := usecase.NewServiceConfigUseCase(configRepo, configCache, logger)
	quoteUseCase := usecase.NewQuoteUseCase(configUseCase)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, fileStore, quoteUseCase, logger)

	configHandler := handlers.NewServiceConfigHandler(configUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, configHandler, quoteHandler, documentHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
