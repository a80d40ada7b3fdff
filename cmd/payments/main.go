package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/transferflow/internal/pkg/config"
	"github.com/piresc/transferflow/internal/pkg/constants"
	pkgctx "github.com/piresc/transferflow/internal/pkg/context"
	"github.com/piresc/transferflow/internal/pkg/database"
	"github.com/piresc/transferflow/internal/pkg/health"
	httpclient "github.com/piresc/transferflow/internal/pkg/http"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/middleware"
	natspkg "github.com/piresc/transferflow/internal/pkg/nats"
	nrpkg "github.com/piresc/transferflow/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/transferflow/internal/pkg/nsq"
	"github.com/piresc/transferflow/internal/pkg/retry"
	"github.com/piresc/transferflow/internal/pkg/server"
	otpgateway "github.com/piresc/transferflow/services/otp/gateway"
	otprepository "github.com/piresc/transferflow/services/otp/repository"
	otpusecase "github.com/piresc/transferflow/services/otp/usecase"
	"github.com/piresc/transferflow/services/payment/gateway"
	"github.com/piresc/transferflow/services/payment/handler"
	httpHandler "github.com/piresc/transferflow/services/payment/handler/http"
	"github.com/piresc/transferflow/services/payment/repository"
	"github.com/piresc/transferflow/services/payment/usecase"
)

const sessionSweepInterval = time.Minute

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/payments.env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})

	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdown.Register("nsq", func(context.Context) error {
		nsqProducer.Stop()
		return nil
	})

	coreBanking := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.Services.CoreBankingURL,
		Timeout: configs.Services.CoreBankingTimeout,
		Retry:   retry.DefaultConfig(),
	})

	// OTP service
	otpRepo := otprepository.NewOTPRepo(redisClient)
	otpGW := otpgateway.NewOTPGW(nsqProducer)
	otpUC := otpusecase.NewOTPUC(otpRepo, otpGW, configs.OTP)

	// Payment service
	sessions := usecase.NewSessionStore(configs.Payment.SessionTTL)
	paymentRepo := repository.NewPaymentRepo(postgresClient.GetDB())
	paymentGW := gateway.NewPaymentGW(coreBanking, natsClient)
	paymentUC := usecase.NewPaymentUC(paymentRepo, paymentGW, otpUC, sessions, configs)

	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	Handler := handler.NewHandler(paymentHandler, configs)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.Recover())
	e.Use(pkgctx.RequestID())
	if nrApp != nil {
		e.Use(nrpkg.Middleware(nrApp))
	}
	e.Use(logger.EchoMiddleware(zapLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", health.Postgres(postgresClient))
	healthService.AddChecker("redis", health.Redis(redisClient))
	healthService.AddChecker("nats", health.NATS(natsClient))
	healthService.AddChecker("nsq", health.NSQ(nsqProducer))
	healthService.AddChecker("core_banking", health.Breaker(coreBanking.BreakerStats))
	health.RegisterEndpoints(e, healthService)

	Handler.RegisterRoutes(e, middleware.RateLimiter(middleware.RateLimiterConfig{
		Client: redisClient.GetClient(),
		Key:    constants.RateLimitOTPResend,
		Limit:  3,
		Period: time.Minute,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sessions.Run(ctx, sessionSweepInterval)
	}()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	// Sessions close after the listener stops so no request races a closing flow
	stop()
	<-sweepDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}
}
