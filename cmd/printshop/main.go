package main

import (
	"context"
	"log/slog"
	"os"

	"printshop/config"
	"printshop/internal/delivery"
	"printshop/internal/delivery/api"
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/router/handler"
	"printshop/internal/domain/service"
	"printshop/internal/infra/auth"
	logs "printshop/internal/infra/log"
	"printshop/internal/infra/persistence/postgres"
	"printshop/internal/infra/pubsub"
	"printshop/internal/infra/qrcode"
	"printshop/internal/pkg/clock"
	"printshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectEngine(),
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
		clock.NewRealClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewCustomerRepository,
			postgres.NewStockRepository,
			postgres.NewReasonRepository,
			postgres.NewAlertRepository,
			postgres.NewAuditRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// injectEngine provides the transactional building blocks shared by the usecases.
func injectEngine() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlertMonitor,
			impl.NewStockLedger,
			func(cfg *config.Config, clk clock.Clock, logger *slog.Logger) *impl.AuditWriter {
				return impl.NewAuditWriter(cfg.Inventory.SystemActorID, clk, logger)
			},
			newEventDispatcher,
		),
	)
}

// newEventDispatcher drains in-flight publishes before the publisher closes.
func newEventDispatcher(lc fx.Lifecycle, cfg *config.Config, publisher service.EventPublisher, clk clock.Clock, logger *slog.Logger) *impl.EventDispatcher {
	dispatcher := impl.NewEventDispatcher(publisher, cfg.Inventory.EventTimeout, clk, logger)
	lc.Append(fx.StopHook(dispatcher.Wait))

	return dispatcher
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewStockService,
			impl.NewReasonService,
			impl.NewAlertService,
			impl.NewAuditService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewStockHandler,
			handler.NewMonitorHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
