package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcRouter "github.com/dtroode/yokai-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/yokai-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/yokai-server/internal/api/http/context"
	httpRouter "github.com/dtroode/yokai-server/internal/api/http/router"
	httpServer "github.com/dtroode/yokai-server/internal/api/http/server"
	"github.com/dtroode/yokai-server/internal/config"
	"github.com/dtroode/yokai-server/internal/hasher"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/notify"
	"github.com/dtroode/yokai-server/internal/repository/postgres"
	"github.com/dtroode/yokai-server/internal/server"
	"github.com/dtroode/yokai-server/internal/service"
	"github.com/dtroode/yokai-server/internal/storage/disk"
	minioStorage "github.com/dtroode/yokai-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	logAppVersion()

	db, err := postgres.NewConnection(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	blobs, err := newBlobStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize blob storage", "error", err, "backend", cfg.Storage.Backend)
	}

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	inviteRepo := postgres.NewInviteRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)
	chatRepo := postgres.NewChatRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	hostRepo := postgres.NewHostRepository(db)

	bcrypt := hasher.NewBcrypt(cfg.Bcrypt.Cost)
	hub := notify.NewHub(notify.DefaultBuffer, logger)

	identityService := service.NewIdentity(userRepo, accountRepo, bcrypt, logger)
	tokenService := service.NewTokenService(tokenRepo, userRepo, bcrypt, logger)
	chatService := service.NewChat(chatRepo, userRepo, logger)
	messageService := service.NewMessage(chatRepo, messageRepo, userRepo, fileRepo, hub, cfg.KeyPolicy(), logger)
	fileService := service.NewFile(fileRepo, blobs, logger)
	profileService := service.NewProfile(userRepo, fileRepo, bcrypt, logger)
	accountService := service.NewAccount(accountRepo, userRepo, inviteRepo, blobs, logger)
	hostService := service.NewHost(hostRepo, logger)

	bootstrap := service.NewBootstrap(hostRepo, userRepo, identityService, logger)
	if err := bootstrap.Run(ctx, bootstrapParams(cfg)); err != nil {
		logger.Fatal("failed to bootstrap instance", "error", err)
	}

	var hubWG sync.WaitGroup
	hubCtx, stopHub := context.WithCancel(context.Background())
	hubWG.Add(1)
	go func() {
		defer hubWG.Done()
		hub.Run(hubCtx)
	}()

	router := httpRouter.New(httpRouter.Services{
		Identity: identityService,
		Token:    tokenService,
		Chat:     chatService,
		Message:  messageService,
		File:     fileService,
		Profile:  profileService,
		Account:  accountService,
		Host:     hostService,
		Feed:     hub,
	}, httpRouter.Options{
		BodyLimit:    cfg.App.BodyLimit,
		AllowOrigins: cfg.App.AllowOrigins,
		LogLevel:     cfg.LogLevel,
	}, httpctx.NewManager(), logger)

	healthServer := health.NewServer()

	servers := []model.Server{
		httpServer.NewHTTPServer(router.Register(), net.JoinHostPort(cfg.App.Host, cfg.App.Port)),
		httpServer.NewHTTPServer(router.Metrics(), fmt.Sprintf(":%s", cfg.Metrics.Port)),
		grpcServer.NewGRPCServer(
			grpcRouter.New(healthServer, cfg.GRPC.LogHealthChecks, logger).Register(),
			fmt.Sprintf(":%s", cfg.GRPC.Port),
		),
	}

	sl := server.NewSecurityLayer(cfg.App.EnableHTTPS, cfg.App.CertFileName, cfg.App.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	logger.Info("instance ready",
		"hostname", cfg.Hostname,
		"storage", cfg.Storage.Backend,
		"key_policy", cfg.KeyPolicy())

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}
	wg.Wait()

	stopHub()
	hubWG.Wait()

	logger.Info("shutdown complete")
}

func newBlobStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	if cfg.Storage.Backend != config.StorageMinio {
		return disk.New(cfg.Storage.Directory)
	}

	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return minioStorage.NewClient(ctx, client, cfg.Minio.Bucket)
}

func bootstrapParams(cfg *config.Config) service.BootstrapParams {
	return service.BootstrapParams{
		Host: model.HostInfo{
			Hostname:       cfg.Hostname,
			PrimaryColor:   cfg.Instance.Primary,
			SecondaryColor: cfg.Instance.Secondary,
			TertiaryColor:  cfg.Instance.Tertiary,
		},
		Admin: model.ProvisionParams{
			Username:       cfg.Admin.Username,
			Password:       cfg.Admin.Password,
			DisplayName:    cfg.Admin.DisplayName,
			Description:    cfg.Admin.Description,
			PrimaryColor:   cfg.Admin.PrimaryColor,
			SecondaryColor: cfg.Admin.SecondaryColor,
			TertiaryColor:  cfg.Admin.TertiaryColor,
		},
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
