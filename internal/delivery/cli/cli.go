// Package cli — интерфейсный слой поверх хранилища состояния.
// Команды только разбирают ввод и печатают результат; вся логика живёт
// в usecase-слое и самом хранилище.
package cli

import (
	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/urfave/cli/v2"
)

type Router struct {
	catalogUC  usecase.CatalogUC
	checkoutUC usecase.CheckoutUC
	adminUC    usecase.AdminUC
	store      usecase.StateStore
	logger     logger.Logger
}

func NewRouter(
	catalogUC usecase.CatalogUC,
	checkoutUC usecase.CheckoutUC,
	adminUC usecase.AdminUC,
	store usecase.StateStore,
	logger logger.Logger,
) *Router {
	return &Router{
		catalogUC:  catalogUC,
		checkoutUC: checkoutUC,
		adminUC:    adminUC,
		store:      store,
		logger:     logger,
	}
}

// Init собирает консольное приложение со всеми командами магазина.
func (r *Router) Init() *cli.App {
	return &cli.App{
		Name:  "go-store",
		Usage: "storefront demo: catalog, cart, checkout and admin panel over a local store",
		Commands: []*cli.Command{
			r.catalogCommand(),
			r.cartCommand(),
			r.checkoutCommand(),
			r.adminCommand(),
			r.modeCommand(),
		},
	}
}
