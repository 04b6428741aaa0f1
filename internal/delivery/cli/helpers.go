package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/pkg/currency"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/shopspring/decimal"
)

// parsePriceDZD разбирает цену в динарах из строки вида "45000".
// Возвращает ошибку, если:
// - формат некорректен
// - значение отрицательное
// - есть дробная часть (цены хранятся целыми динарами)
// - превышен разумный предел (100 млн динаров)
func parsePriceDZD(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(100_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < 0 && !d.Equal(d.Truncate(0)) {
		return 0, e.ErrPricePrecision
	}

	return d.IntPart(), nil
}

func printProduct(w io.Writer, p domain.Product) {
	fmt.Fprintf(w, "%s  %-32s %12s  stock:%-3d %s\n",
		p.ID, p.Name, currency.FormatDZD(p.Price), p.Stock, p.Category)
}

func printCart(w io.Writer, items []domain.CartItem, total int64) {
	if len(items) == 0 {
		fmt.Fprintln(w, "cart is empty")
		return
	}

	for _, item := range items {
		fmt.Fprintf(w, "%s  %-32s x%-3d %12s\n",
			item.Product.ID, item.Product.Name, item.Quantity, currency.FormatDZD(item.Subtotal()))
	}
	fmt.Fprintf(w, "total: %s\n", currency.FormatDZD(total))
}

func printOrder(w io.Writer, o domain.Order) {
	fmt.Fprintf(w, "order %s  [%s]  %s  %s, %s (%s)\n",
		o.ID, o.Status, currency.FormatDZD(o.Total), o.Customer.Name, o.Customer.City, o.Customer.Wilaya)
	for _, item := range o.Items {
		fmt.Fprintf(w, "  %-32s x%-3d %12s\n",
			item.Product.Name, item.Quantity, currency.FormatDZD(item.Subtotal()))
	}
}
