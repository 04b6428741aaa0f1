package usecase_test

import (
	"time"

	"github.com/ecommerce-dz/go-store/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// memMirror — зеркало в памяти для тестов usecase-слоя.
type memMirror struct {
	products []domain.Product
	orders   []domain.Order
	cart     []domain.CartItem
}

func (m *memMirror) ReadProducts() ([]domain.Product, error) { return m.products, nil }
func (m *memMirror) ReadOrders() ([]domain.Order, error)     { return m.orders, nil }
func (m *memMirror) ReadCart() ([]domain.CartItem, error)    { return m.cart, nil }

func (m *memMirror) WriteProducts(products []domain.Product) error {
	m.products = products
	return nil
}

func (m *memMirror) WriteOrders(orders []domain.Order) error {
	m.orders = orders
	return nil
}

func (m *memMirror) WriteCart(items []domain.CartItem) error {
	m.cart = items
	return nil
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{
			ID:          "a",
			Name:        "Smartphone Galaxy",
			Description: "écran AMOLED",
			Price:       1000,
			Category:    "Electronics",
			Stock:       5,
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "b",
			Name:        "Nike Air Max",
			Description: "chaussures de sport",
			Price:       2000,
			Category:    "Fashion",
			Stock:       0,
			CreatedAt:   time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "c",
			Name:        "Canapé",
			Description: "canapé trois places",
			Price:       1500,
			Category:    "Home & Garden",
			Stock:       3,
			CreatedAt:   time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC),
		},
	}
}
