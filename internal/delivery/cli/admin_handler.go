package cli

import (
	"fmt"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/taxonomy"
	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/ecommerce-dz/go-store/pkg/currency"
	"github.com/urfave/cli/v2"
)

func (r *Router) adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "manage products and orders",
		Subcommands: []*cli.Command{
			r.adminProductCommand(),
			r.adminOrdersCommand(),
			{
				Name:  "stats",
				Usage: "print dashboard statistics",
				Action: func(ctx *cli.Context) error {
					stats := r.adminUC.Stats()
					fmt.Fprintf(ctx.App.Writer, "total sales:    %s\n", currency.FormatDZD(stats.TotalSales))
					fmt.Fprintf(ctx.App.Writer, "total orders:   %d\n", stats.TotalOrders)
					fmt.Fprintf(ctx.App.Writer, "pending orders: %d\n", stats.PendingOrders)
					fmt.Fprintf(ctx.App.Writer, "total products: %d\n", stats.TotalProducts)
					return nil
				},
			},
		},
	}
}

func (r *Router) adminProductCommand() *cli.Command {
	productFlags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "price", Usage: "price in whole dinars"},
		&cli.StringFlag{Name: "category"},
		&cli.StringFlag{Name: "image", Usage: "image URL"},
		&cli.IntFlag{Name: "stock"},
	}

	return &cli.Command{
		Name:  "product",
		Usage: "manage the catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "add a new product",
				Flags: productFlags,
				Action: func(ctx *cli.Context) error {
					price, err := parsePriceDZD(ctx.String("price"))
					if err != nil {
						return err
					}

					category := ctx.String("category")
					if category != "" && !taxonomy.ValidCategory(category) {
						return fmt.Errorf("unknown category: %s", category)
					}

					product, err := r.adminUC.CreateProduct(usecase.NewAddProductReq(
						ctx.String("name"),
						ctx.String("description"),
						price,
						category,
						ctx.String("image"),
						ctx.Int("stock"),
					))
					if err != nil {
						return err
					}

					printProduct(ctx.App.Writer, *product)

					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "replace a product by id",
				ArgsUsage: "<product-id>",
				Flags:     productFlags,
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return fmt.Errorf("expected exactly one product id")
					}

					existing, ok := r.findProduct(ctx.Args().First())
					if !ok {
						return fmt.Errorf("product not found: %s", ctx.Args().First())
					}

					// незаданные флаги оставляют прежние значения
					if ctx.IsSet("name") {
						existing.Name = ctx.String("name")
					}
					if ctx.IsSet("description") {
						existing.Description = ctx.String("description")
					}
					if ctx.IsSet("price") {
						price, err := parsePriceDZD(ctx.String("price"))
						if err != nil {
							return err
						}
						existing.Price = price
					}
					if ctx.IsSet("category") {
						category := ctx.String("category")
						if !taxonomy.ValidCategory(category) {
							return fmt.Errorf("unknown category: %s", category)
						}
						existing.Category = category
					}
					if ctx.IsSet("image") {
						existing.Image = ctx.String("image")
					}
					if ctx.IsSet("stock") {
						existing.Stock = ctx.Int("stock")
					}

					if err := r.adminUC.UpdateProduct(existing); err != nil {
						return err
					}

					printProduct(ctx.App.Writer, existing)

					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a product by id",
				ArgsUsage: "<product-id>",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return fmt.Errorf("expected exactly one product id")
					}

					r.adminUC.DeleteProduct(ctx.Args().First())
					fmt.Fprintln(ctx.App.Writer, "deleted")

					return nil
				},
			},
		},
	}
}

func (r *Router) adminOrdersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "manage orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all orders",
				Action: func(ctx *cli.Context) error {
					orders := r.adminUC.Orders()
					if len(orders) == 0 {
						fmt.Fprintln(ctx.App.Writer, "no orders")
						return nil
					}

					for _, order := range orders {
						printOrder(ctx.App.Writer, order)
					}

					return nil
				},
			},
			{
				Name:      "set-status",
				Usage:     "advance an order along the status graph",
				ArgsUsage: "<order-id> <pending|confirmed|shipped|delivered|cancelled>",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 2 {
						return fmt.Errorf("expected order id and status")
					}

					order, err := r.adminUC.UpdateOrderStatus(
						ctx.Args().First(),
						domain.OrderStatus(ctx.Args().Get(1)),
					)
					if err != nil {
						return err
					}

					printOrder(ctx.App.Writer, *order)

					return nil
				},
			},
		},
	}
}

func (r *Router) findProduct(productID string) (domain.Product, bool) {
	for _, p := range r.store.Products() {
		if p.ID == productID {
			return p, true
		}
	}

	return domain.Product{}, false
}
