package cli

import (
	"bytes"
	"testing"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// memMirror — зеркало в памяти для тестов консольных команд.
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

func testRouter(t *testing.T, catalog []domain.Product) (*Router, *state.Store) {
	t.Helper()

	store := state.NewStore(&memMirror{}, nopLogger{})
	store.Load(catalog)

	catalogUC := usecase.NewCatalogUC(store, nopLogger{})
	checkoutUC := usecase.NewCheckoutUC(store, 0, nopLogger{})
	adminUC := usecase.NewAdminUC(store, nopLogger{})

	return NewRouter(catalogUC, checkoutUC, adminUC, store, nopLogger{}), store
}

func sampleProduct() domain.Product {
	return domain.Product{
		ID:          "p1",
		Name:        "Produit",
		Description: "description",
		Price:       1000,
		Category:    "Electronics",
		Image:       "https://example.com/p.jpg",
		Stock:       5,
	}
}

func runCommand(t *testing.T, router *Router, args ...string) error {
	t.Helper()

	app := router.Init()
	app.Writer = &bytes.Buffer{}

	return app.Run(append([]string{"go-store"}, args...))
}

func TestAdminProductUpdateKeepsUnsetFields(t *testing.T) {
	router, store := testRouter(t, []domain.Product{sampleProduct()})

	err := runCommand(t, router, "admin", "product", "update", "--price", "2500", "p1")
	require.NoError(t, err)

	got := store.Products()[0]
	assert.Equal(t, int64(2500), got.Price)
	assert.Equal(t, "Produit", got.Name)
	assert.Equal(t, "description", got.Description)
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, "https://example.com/p.jpg", got.Image)
	assert.Equal(t, 5, got.Stock)
}

func TestAdminProductUpdateReplacesGivenFields(t *testing.T) {
	router, store := testRouter(t, []domain.Product{sampleProduct()})

	err := runCommand(t, router, "admin", "product", "update",
		"--name", "Produit Pro", "--stock", "9", "p1")
	require.NoError(t, err)

	got := store.Products()[0]
	assert.Equal(t, "Produit Pro", got.Name)
	assert.Equal(t, 9, got.Stock)
	assert.Equal(t, int64(1000), got.Price)
}

func TestAdminProductUpdateUnknownId(t *testing.T) {
	router, _ := testRouter(t, []domain.Product{sampleProduct()})

	err := runCommand(t, router, "admin", "product", "update", "--name", "X", "ghost")
	assert.ErrorContains(t, err, "product not found")
}
