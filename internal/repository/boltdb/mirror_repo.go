package boltdb

import (
	"encoding/json"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/repository/codec"
	"github.com/ecommerce-dz/go-store/pkg/clients"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/jimlawless/whereami"
	bolt "go.etcd.io/bbolt"
)

// Bucket — единственный бакет зеркала; внутри него три фиксированных ключа.
const Bucket = "ecommerce_dz"

const (
	keyProducts = "products"
	keyOrders   = "orders"
	keyCart     = "cart"
)

// MirrorRepo реализует зеркало состояния поверх bbolt.
// Каждый ключ перезаписывается целиком; нечитаемое значение считается пустым.
type MirrorRepo struct {
	client *clients.BoltClient
	conv   codec.StateConverter
	logger logger.Logger
}

func NewMirrorRepo(client *clients.BoltClient, conv codec.StateConverter, logger logger.Logger) *MirrorRepo {
	return &MirrorRepo{
		client: client,
		conv:   conv,
		logger: logger,
	}
}

// ReadProducts возвращает сохранённый каталог.
func (r *MirrorRepo) ReadProducts() ([]domain.Product, error) {
	data, err := r.get(keyProducts)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []codec.ProductModel
	if !r.unmarshalValue(keyProducts, data, &models) {
		return []domain.Product{}, nil
	}

	return r.conv.ToArrProduct(models), nil
}

// WriteProducts перезаписывает каталог целиком.
func (r *MirrorRepo) WriteProducts(products []domain.Product) error {
	data, err := json.Marshal(r.conv.ToArrProductModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return r.put(keyProducts, data)
}

// ReadOrders возвращает сохранённые заказы.
func (r *MirrorRepo) ReadOrders() ([]domain.Order, error) {
	data, err := r.get(keyOrders)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []codec.OrderModel
	if !r.unmarshalValue(keyOrders, data, &models) {
		return []domain.Order{}, nil
	}

	return r.conv.ToArrOrder(models), nil
}

// WriteOrders перезаписывает заказы целиком.
func (r *MirrorRepo) WriteOrders(orders []domain.Order) error {
	data, err := json.Marshal(r.conv.ToArrOrderModel(orders))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return r.put(keyOrders, data)
}

// ReadCart возвращает сохранённую корзину.
func (r *MirrorRepo) ReadCart() ([]domain.CartItem, error) {
	data, err := r.get(keyCart)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []codec.CartItemModel
	if !r.unmarshalValue(keyCart, data, &models) {
		return []domain.CartItem{}, nil
	}

	return r.conv.ToArrCartItem(models), nil
}

// WriteCart перезаписывает корзину целиком.
func (r *MirrorRepo) WriteCart(items []domain.CartItem) error {
	data, err := json.Marshal(r.conv.ToArrCartItemModel(items))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return r.put(keyCart, data)
}

// get возвращает сырое значение ключа, nil — если ключ отсутствует.
func (r *MirrorRepo) get(key string) ([]byte, error) {
	var data []byte
	err := r.client.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(Bucket))
		if bucket == nil {
			return nil
		}

		if value := bucket.Get([]byte(key)); value != nil {
			data = make([]byte, len(value))
			copy(data, value)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (r *MirrorRepo) put(key string, data []byte) error {
	err := r.client.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(Bucket))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// unmarshalValue декодирует значение ключа. Повреждённое значение не фатально:
// предупреждение в лог, ключ читается как пустой.
func (r *MirrorRepo) unmarshalValue(key string, data []byte, dst any) bool {
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warnf("corrupt value for key %s, treating as empty: %v", key, e.Wrap(whereami.WhereAmI(), err))
		return false
	}

	return true
}
