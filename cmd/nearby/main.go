package main

import (
	"context"
	"log/slog"
	"os"

	"nearby/config"
	"nearby/internal/delivery"
	"nearby/internal/delivery/http"
	"nearby/internal/delivery/http/middleware"
	"nearby/internal/delivery/http/router/handler"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/infra/animation"
	"nearby/internal/infra/location"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/mapview"
	"nearby/internal/infra/persistence/memory"
	"nearby/internal/infra/persistence/postgres"
	"nearby/internal/infra/pubsub"
	"nearby/internal/infra/qrcode"
	"nearby/internal/usecase"
	"nearby/internal/usecase/impl"

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
			mountNearbyScreen,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type kvStoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newKVStore selects the share log backend. Without a configured PostgreSQL
// connection the logs live in process memory only.
func newKVStore(params kvStoreParams) (repository.KVStore, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("PostgreSQL not configured, using in-memory share storage")

		return memory.NewKVStore(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewKVRepository(db), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newKVStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			location.NewProvider,
			mapview.NewLogMapView,
			animation.NewTickerAnimator,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewNearbyService,
			impl.NewSelectionService,
			impl.NewShareService,
			impl.NewDirectionsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNearbyHandler,
			handler.NewShareHandler,
			handler.NewDirectionsHandler,
			handler.NewVenueHandler,
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

type mountParams struct {
	fx.In
	fx.Lifecycle

	CatalogUC usecase.CatalogUsecase
	NearbyUC  usecase.NearbyUsecase
	MapView   service.MapView
	Logger    *slog.Logger
}

// mountNearbyScreen runs the screen-mount sequence on startup: resolve the
// catalog, reset the paginator to the first page and push the markers.
func mountNearbyScreen(params mountParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.CatalogUC.Populate(ctx); err != nil {
				return err
			}

			venues := params.NearbyUC.Initialize()
			markers := make([]service.Marker, 0, len(venues))
			for _, venue := range venues {
				markers = append(markers, service.Marker{
					ID:         venue.ID,
					Coordinate: venue.Coordinate,
				})
			}
			params.MapView.SetMarkers(markers)

			params.Logger.Info("Nearby screen mounted",
				slog.Int("catalogSize", params.CatalogUC.Size()),
				slog.Int("visibleVenues", len(venues)),
				slog.Bool("degraded", params.CatalogUC.Degraded()),
			)

			return nil
		},
	})
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
