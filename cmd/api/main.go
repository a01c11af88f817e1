package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"fukuro_studio/internal/adapter/extraction"
	"fukuro_studio/internal/adapter/http/handlers"
	"fukuro_studio/internal/adapter/http/routes"
	"fukuro_studio/internal/adapter/notification"
	"fukuro_studio/internal/adapter/persistence/jsonfile"
	"fukuro_studio/internal/adapter/persistence/repository"
	"fukuro_studio/internal/adapter/session"
	"fukuro_studio/internal/adapter/storage"
	"fukuro_studio/internal/config"
	"fukuro_studio/internal/infrastructure/auth"
	"fukuro_studio/internal/infrastructure/clock"
	"fukuro_studio/internal/infrastructure/database"
	"fukuro_studio/internal/infrastructure/observability"
	"fukuro_studio/internal/infrastructure/payments"
	"fukuro_studio/internal/infrastructure/resilience"
	"fukuro_studio/internal/usecase"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Fukuro Studio Quotation API
// @version         1.0
// @description     Quotes, chat intake, project dashboards and on-delivery payments for the Fukuro audio/video studio.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

type repositories struct {
	quotes   interfaces.IQuoteRepository
	projects interfaces.IProjectRepository
	payments interfaces.IBillingPaymentRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.NewLogger("info").Fatal("[main] invalid configuration", zap.Error(err))
	}

	log := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	studioClock := clock.NewLocal(cfg.Location())

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal("[main] persistence unavailable", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	sessions, err := openSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal("[main] session store unavailable", zap.String("store", cfg.SessionStore), zap.Error(err))
	}

	var extractor interfaces.IExtractor
	if cfg.GeminiAPIKey != "" {
		gemini, err := extraction.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, extraction.Options{
			Model:   cfg.GeminiModel,
			Timeout: cfg.ExtractionTimeout,
			Resilience: resilience.Config{
				MaxRetries:     cfg.MaxRetries,
				InitialBackoff: cfg.InitialBackoff,
			},
		}, studioClock, metrics, log)
		if err != nil {
			log.Fatal("[main] gemini client", zap.Error(err))
		}
		extractor = gemini
	} else {
		log.Warn("[main] GEMINI_API_KEY not set, chat intake will reject messages")
	}

	var notifier interfaces.INotifier = notification.NewLogNotifier(log)
	if cfg.SMTPHost != "" {
		smtp, err := notification.NewSMTPNotifier(notification.SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			Studio:   cfg.StudioEmail,
		}, log)
		if err != nil {
			log.Fatal("[main] smtp client", zap.Error(err))
		}
		notifier = smtp
	}

	var files interfaces.IFileStorage
	minioStorage, err := storage.NewMinioStorage(storage.Options{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Warn("[main] MINIO_ENDPOINT not set, deliverable uploads disabled")
	case err != nil:
		log.Fatal("[main] minio client", zap.Error(err))
	default:
		if err := minioStorage.EnsureBucket(ctx); err != nil {
			log.Fatal("[main] minio bucket", zap.String("bucket", cfg.MinioBucket), zap.Error(err))
		}
		files = minioStorage
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.PaymentGatewayMock {
		mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, metrics, log)
		if err != nil {
			log.Warn("[main] Mercado Pago gateway not configured", zap.Error(err))
		} else {
			gateway = mp
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	quoteUseCase := usecase.NewQuoteUseCase(repos.quotes, repos.projects, cfg.Rates, studioClock, notifier, log).WithMetrics(metrics)
	intakeUseCase := usecase.NewIntakeUseCase(sessions, extractor, quoteUseCase, cfg.Rates, studioClock, log).WithMetrics(metrics)
	projectUseCase := usecase.NewProjectUseCase(repos.projects, repos.quotes, files, studioClock, cfg.PublicBaseURL, cfg.UploadURLTTL, log)
	authUseCase := usecase.NewAuthUseCase(cfg.AdminUsername, cfg.AdminPasswordHash, tokens, log)
	paymentUseCase := usecase.NewBillingPaymentUseCase(repos.payments, repos.quotes, gateway, studioClock, usecase.PaymentSettings{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}, log)

	router := routes.NewRouter(routes.Handlers{
		Quote:   handlers.NewQuoteHandler(quoteUseCase, cfg.Location(), log),
		Intake:  handlers.NewIntakeHandler(intakeUseCase, log),
		Project: handlers.NewProjectHandler(projectUseCase, log),
		Auth:    handlers.NewAuthHandler(authUseCase, log),
		Payment: handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, log),
	}, tokens, metrics, routes.Options{
		CORSOrigins:    cfg.CORSOrigins,
		ChatRateLimit:  cfg.ChatRateLimit,
		ChatBurst:      cfg.ChatBurst,
		MaxConcurrency: cfg.MaxConcurrency,
	}, log)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("[main] listening",
			zap.Int("port", cfg.Port),
			zap.String("storage", cfg.StorageDriver),
			zap.String("sessions", cfg.SessionStore),
			zap.String("timezone", cfg.Timezone))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("[main] failed to start up the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("[main] graceful shutdown failed", zap.Error(err))
	}
	if closer, ok := sessions.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger) (repositories, error) {
	if cfg.StorageDriver == config.StorageFile {
		quotes, err := jsonfile.NewQuoteRepository(cfg.DataDir)
		if err != nil {
			return repositories{}, err
		}
		projects, err := jsonfile.NewProjectRepository(cfg.DataDir)
		if err != nil {
			return repositories{}, err
		}
		paymentRepo, err := jsonfile.NewBillingPaymentRepository(cfg.DataDir)
		if err != nil {
			return repositories{}, err
		}
		return repositories{quotes: quotes, projects: projects, payments: paymentRepo}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.Options{Region: cfg.AWSRegion, Endpoint: cfg.DynamoEndpoint})
	if err != nil {
		return repositories{}, err
	}
	if cfg.DynamoAutoCreate {
		err := database.EnsureTables(ctx, ddb, []database.TableSpec{
			{Name: cfg.QuotesTable, GSIs: map[string]string{repository.QuotesProjectIDIndex: "project_id"}},
			{Name: cfg.ProjectsTable, GSIs: map[string]string{repository.ProjectsNameKeyIndex: "name_key"}},
			{Name: cfg.PaymentsTable, GSIs: map[string]string{repository.PaymentsQuoteIDIndex: "quote_id"}},
		}, log)
		if err != nil {
			return repositories{}, err
		}
	}
	return repositories{
		quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable),
		projects: repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable),
		payments: repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable),
	}, nil
}

func openSessionStore(ctx context.Context, cfg *config.Config) (interfaces.IIntakeSessionStore, error) {
	if cfg.SessionStore == config.SessionRedis {
		return session.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL)
	}
	return session.NewMemoryStore(ctx, cfg.SessionTTL), nil
}
