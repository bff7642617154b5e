package main

import (
	"context"
	"log/slog"
	"os"

	"iriscan/config"
	"iriscan/internal/delivery"
	"iriscan/internal/delivery/http"
	"iriscan/internal/delivery/http/middleware"
	"iriscan/internal/delivery/http/router/handler"
	"iriscan/internal/domain/service"
	"iriscan/internal/infra/analysis"
	"iriscan/internal/infra/billing"
	"iriscan/internal/infra/imaging"
	logs "iriscan/internal/infra/log"
	"iriscan/internal/infra/persistence/firestore"
	"iriscan/internal/infra/persistence/localblob"
	"iriscan/internal/infra/pubsub"
	"iriscan/internal/infra/retry"
	"iriscan/internal/usecase/impl"

	"go.uber.org/fx"
)

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
		localblob.New,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localblob.NewHistoryRepository,
			localblob.NewEntitlementRepository,
			localblob.NewImageStore,
			firestore.NewHistoryRepository,
			firestore.NewEntitlementRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.SystemClock,
			retry.New,
			imaging.New,
			analysis.NewClient,
			analysis.NewFallbackGenerator,
			billing.NewClient,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEntitlementService,
			impl.NewHistoryService,
			impl.NewScanService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScanHandler,
			handler.NewHistoryHandler,
			handler.NewEntitlementHandler,
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
