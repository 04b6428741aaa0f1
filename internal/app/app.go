package app

import (
	"context"
	"os"
	"time"

	config "github.com/ecommerce-dz/go-store/internal/cfg"
	deliveryCli "github.com/ecommerce-dz/go-store/internal/delivery/cli"
	"github.com/ecommerce-dz/go-store/internal/repository/boltdb"
	"github.com/ecommerce-dz/go-store/internal/repository/codec"
	fileRepo "github.com/ecommerce-dz/go-store/internal/repository/file"
	"github.com/ecommerce-dz/go-store/internal/seed"
	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/ecommerce-dz/go-store/pkg/clients"
	"github.com/ecommerce-dz/go-store/pkg/closer"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Run собирает приложение и выполняет одну консольную команду.
func Run(args []string, log logger.Logger) error {
	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		return err
	}

	cl := closer.NewCloser()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := cl.Close(shutdownCtx); err != nil {
			log.Warnf("shutdown: %v", err)
		}
	}()

	mirror, err := initMirror(cfg, cl, log)
	if err != nil {
		log.Errorf(err, "failed to initialize storage")
		return err
	}

	store := state.NewStore(mirror, log)
	store.Load(seed.Catalog())

	catalogUC := usecase.NewCatalogUC(store, log)
	checkoutUC := usecase.NewCheckoutUC(store, cfg.Checkout.SubmitDelay, log)
	adminUC := usecase.NewAdminUC(store, log)

	router := deliveryCli.NewRouter(catalogUC, checkoutUC, adminUC, store, log)

	return router.Init().Run(args)
}

// initMirror выбирает бэкенд зеркала по конфигурации.
func initMirror(cfg *config.Config, cl *closer.Closer, log logger.Logger) (state.Mirror, error) {
	conv := codec.NewStateConverterImpl()

	switch cfg.Storage.Backend {
	case config.BackendFile:
		return fileRepo.NewMirrorRepo(cfg.Storage.Dir, conv, log)

	default:
		if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		client, err := clients.NewBoltClient(cfg.Storage)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cl.Add(func(ctx context.Context) error {
			return client.Close()
		})

		if err := clients.EnsureBucket(client, boltdb.Bucket); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return boltdb.NewMirrorRepo(client, conv, log), nil
	}
}
