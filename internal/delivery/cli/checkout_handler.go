package cli

import (
	"fmt"

	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/internal/taxonomy"
	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/ecommerce-dz/go-store/pkg/currency"
	"github.com/urfave/cli/v2"
)

func (r *Router) checkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "place an order from the current cart (cash on delivery)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "customer full name"},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "phone", Required: true, Usage: "Algerian phone number"},
			&cli.StringFlag{Name: "address", Required: true},
			&cli.StringFlag{Name: "city", Required: true},
			&cli.StringFlag{Name: "wilaya", Required: true},
			&cli.StringFlag{Name: "notes", Usage: "optional delivery notes"},
		},
		Action: func(ctx *cli.Context) error {
			if !taxonomy.ValidWilaya(ctx.String("wilaya")) {
				return fmt.Errorf("unknown wilaya: %s", ctx.String("wilaya"))
			}

			form := usecase.CustomerForm{
				Name:    ctx.String("name"),
				Email:   ctx.String("email"),
				Phone:   ctx.String("phone"),
				Address: ctx.String("address"),
				City:    ctx.String("city"),
				Wilaya:  ctx.String("wilaya"),
			}

			order, err := r.checkoutUC.Submit(ctx.Context, usecase.NewCheckoutReq(form, ctx.String("notes")))
			if err != nil {
				return err
			}

			fmt.Fprintf(ctx.App.Writer, "order confirmed: %s\n", order.ID)
			fmt.Fprintf(ctx.App.Writer, "total: %s, payment on delivery\n", currency.FormatDZD(order.Total))

			return nil
		},
	}
}

func (r *Router) modeCommand() *cli.Command {
	return &cli.Command{
		Name:  "mode",
		Usage: "toggle between customer and admin mode",
		Action: func(ctx *cli.Context) error {
			r.store.Dispatch(state.ToggleAdminMode{})

			if r.store.IsAdmin() {
				fmt.Fprintln(ctx.App.Writer, "admin mode")
			} else {
				fmt.Fprintln(ctx.App.Writer, "customer mode")
			}

			return nil
		},
	}
}
