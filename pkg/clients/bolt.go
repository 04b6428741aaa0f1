package clients

import (
	"github.com/ecommerce-dz/go-store/internal/cfg"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/jimlawless/whereami"
	bolt "go.etcd.io/bbolt"
)

// BoltClient — обёртка над встроенной базой bbolt, в которой живёт зеркало
// состояния. База принадлежит одному процессу; файл открывается с таймаутом,
// чтобы не зависнуть на чужой блокировке.
type BoltClient struct {
	DB *bolt.DB
}

func NewBoltClient(cfg *cfg.StorageCfg) (*BoltClient, error) {
	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &BoltClient{DB: db}, nil
}

func (c *BoltClient) Close() error {
	return c.DB.Close()
}

// EnsureBucket создаёт бакет зеркала, если его ещё нет.
func EnsureBucket(client *BoltClient, bucket string) error {
	err := client.DB.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
