package boltdb_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ecommerce-dz/go-store/internal/cfg"
	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/repository/boltdb"
	"github.com/ecommerce-dz/go-store/internal/repository/codec"
	"github.com/ecommerce-dz/go-store/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func setup(t *testing.T) (*boltdb.MirrorRepo, *clients.BoltClient) {
	t.Helper()

	client, err := clients.NewBoltClient(&cfg.StorageCfg{
		Path:        filepath.Join(t.TempDir(), "store.db"),
		OpenTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, clients.EnsureBucket(client, boltdb.Bucket))

	return boltdb.NewMirrorRepo(client, codec.NewStateConverterImpl(), nopLogger{}), client
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "a",
			Name:        "Produit A",
			Description: "description",
			Price:       1000,
			Category:    "Electronics",
			Image:       "https://example.com/a.jpg",
			Stock:       5,
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{ID: "b", Name: "Produit B", Price: 2000, Category: "Fashion"},
	}
}

func TestMirrorRoundTrip(t *testing.T) {
	repo, _ := setup(t)

	t.Run("products", func(t *testing.T) {
		require.NoError(t, repo.WriteProducts(sampleProducts()))

		got, err := repo.ReadProducts()
		require.NoError(t, err)
		assert.Equal(t, sampleProducts(), got)
	})

	t.Run("cart", func(t *testing.T) {
		items := []domain.CartItem{
			{Product: sampleProducts()[0], Quantity: 3},
			{Product: sampleProducts()[1], Quantity: 1},
		}
		require.NoError(t, repo.WriteCart(items))

		got, err := repo.ReadCart()
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("orders", func(t *testing.T) {
		orders := []domain.Order{
			*domain.NewOrder(
				"o1",
				domain.Customer{
					ID: "c1", Name: "Amine", Email: "amine@example.com",
					Phone: "0550123456", Address: "12 rue Didouche",
					City: "Alger-Centre", Wilaya: "Alger",
				},
				[]domain.CartItem{{Product: sampleProducts()[0], Quantity: 2}},
				2000,
				time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
				"livraison le soir",
			),
		}
		require.NoError(t, repo.WriteOrders(orders))

		got, err := repo.ReadOrders()
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})
}

func TestMirrorMissingKeysReadEmpty(t *testing.T) {
	repo, _ := setup(t)

	products, err := repo.ReadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)

	orders, err := repo.ReadOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := repo.ReadCart()
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMirrorCorruptValueFailsOpen(t *testing.T) {
	repo, client := setup(t)

	err := client.DB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltdb.Bucket)).Put([]byte("products"), []byte("{not json"))
	})
	require.NoError(t, err)

	products, err := repo.ReadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMirrorOverwritesWholesale(t *testing.T) {
	repo, _ := setup(t)

	require.NoError(t, repo.WriteProducts(sampleProducts()))
	require.NoError(t, repo.WriteProducts([]domain.Product{sampleProducts()[1]}))

	got, err := repo.ReadProducts()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}
