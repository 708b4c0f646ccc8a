package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"vault/config"
	"vault/internal/delivery"
	"vault/internal/delivery/http"
	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/router/handler"
	"vault/internal/domain/service"
	"vault/internal/infra/ai"
	"vault/internal/infra/auth"
	"vault/internal/infra/cache"
	logs "vault/internal/infra/log"
	"vault/internal/infra/persistence/postgres"
	"vault/internal/infra/pubsub"
	"vault/internal/infra/qrcode"
	"vault/internal/infra/storage"
	"vault/internal/infra/webaudit"
	"vault/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultCacheTTL = 5 * time.Minute

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewBusinessRepository,
			postgres.NewServiceRepository,
			postgres.NewCouponRepository,
			postgres.NewMediaRepository,
			postgres.NewOperationalInfoRepository,
			postgres.NewAiMetadataRepository,
			postgres.NewJsonLDFeedRepository,
			postgres.NewVisibilityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newDirectoryCache,
			newQRCodeService,
			ai.NewGeminiGenerator,
			webaudit.NewSiteFetcher,
			storage.NewBlobStore,
			pubsub.NewEventPublisher,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(0)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newDirectoryCache creates the directory snapshot cache with the configured TTL
func newDirectoryCache(cfg *config.Config) service.DirectoryCache {
	ttl := defaultCacheTTL
	if cfg.DirectoryCache != nil && cfg.DirectoryCache.TTLSeconds > 0 {
		ttl = time.Duration(cfg.DirectoryCache.TTLSeconds) * time.Second
	}

	return cache.NewDirectoryCache(ttl)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := ""
	if cfg.Public != nil {
		baseURL = cfg.Public.BaseURL
	}

	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", baseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, baseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewServiceService,
			impl.NewCouponService,
			impl.NewMediaService,
			impl.NewOperationalInfoService,
			impl.NewAiMetadataService,
			impl.NewJsonLDService,
			impl.NewVisibilityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewServiceHandler,
			handler.NewCouponHandler,
			handler.NewMediaHandler,
			handler.NewOperationalInfoHandler,
			handler.NewAiMetadataHandler,
			handler.NewJsonLDHandler,
			handler.NewVisibilityHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
