package cli

import (
	"fmt"

	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/urfave/cli/v2"
)

func (r *Router) catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "browse the product catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "filter by category"},
			&cli.StringFlag{Name: "search", Usage: "substring search in name and description"},
			&cli.StringFlag{Name: "max-price", Usage: "maximum price in whole dinars"},
			&cli.BoolFlag{Name: "in-stock", Usage: "only products with stock left"},
			&cli.StringFlag{Name: "sort", Usage: "newest | price-asc | price-desc | name"},
		},
		Action: func(ctx *cli.Context) error {
			var maxPrice int64
			if ctx.IsSet("max-price") {
				var err error
				if maxPrice, err = parsePriceDZD(ctx.String("max-price")); err != nil {
					return err
				}
			}

			req := usecase.NewListProductsReq(
				ctx.String("category"),
				ctx.String("search"),
				maxPrice,
				ctx.Bool("in-stock"),
				ctx.String("sort"),
			)

			products := r.catalogUC.ListProducts(req)
			if len(products) == 0 {
				fmt.Fprintln(ctx.App.Writer, "no products found")
				return nil
			}

			for _, p := range products {
				printProduct(ctx.App.Writer, p)
			}

			return nil
		},
	}
}

func (r *Router) cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "manage the shopping cart",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "add a product to the cart",
				ArgsUsage: "<product-id>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "quantity", Aliases: []string{"q"}, Value: 1},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return fmt.Errorf("expected exactly one product id")
					}

					if err := r.catalogUC.AddToCart(ctx.Args().First(), ctx.Int("quantity")); err != nil {
						return err
					}

					items, total := r.catalogUC.Cart()
					printCart(ctx.App.Writer, items, total)

					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "remove a product from the cart",
				ArgsUsage: "<product-id>",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return fmt.Errorf("expected exactly one product id")
					}

					r.catalogUC.RemoveFromCart(ctx.Args().First())

					items, total := r.catalogUC.Cart()
					printCart(ctx.App.Writer, items, total)

					return nil
				},
			},
			{
				Name:      "set",
				Usage:     "set the quantity of a cart item (0 removes it)",
				ArgsUsage: "<product-id> <quantity>",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 2 {
						return fmt.Errorf("expected product id and quantity")
					}

					var quantity int
					if _, err := fmt.Sscanf(ctx.Args().Get(1), "%d", &quantity); err != nil {
						return fmt.Errorf("invalid quantity: %s", ctx.Args().Get(1))
					}

					r.catalogUC.SetCartQuantity(ctx.Args().First(), quantity)

					items, total := r.catalogUC.Cart()
					printCart(ctx.App.Writer, items, total)

					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "empty the cart",
				Action: func(ctx *cli.Context) error {
					r.catalogUC.ClearCart()
					fmt.Fprintln(ctx.App.Writer, "cart cleared")
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "print the cart contents",
				Action: func(ctx *cli.Context) error {
					items, total := r.catalogUC.Cart()
					printCart(ctx.App.Writer, items, total)
					return nil
				},
			},
		},
	}
}
