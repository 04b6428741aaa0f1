package file

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/repository/codec"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	fileProducts = "products.json"
	fileOrders   = "orders.json"
	fileCart     = "cart.json"
)

// MirrorRepo реализует зеркало состояния на обычных JSON-файлах:
// по одному файлу на ключ. Запись идёт через временный файл с переименованием,
// чтобы на диске никогда не оказалось полузаписанного значения.
type MirrorRepo struct {
	dir    string
	conv   codec.StateConverter
	logger logger.Logger
}

func NewMirrorRepo(dir string, conv codec.StateConverter, logger logger.Logger) (*MirrorRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &MirrorRepo{
		dir:    dir,
		conv:   conv,
		logger: logger,
	}, nil
}

func (r *MirrorRepo) ReadProducts() ([]domain.Product, error) {
	var models []codec.ProductModel
	if err := r.readFile(fileProducts, &models); err != nil {
		return nil, err
	}

	return r.conv.ToArrProduct(models), nil
}

func (r *MirrorRepo) WriteProducts(products []domain.Product) error {
	return r.writeFile(fileProducts, r.conv.ToArrProductModel(products))
}

func (r *MirrorRepo) ReadOrders() ([]domain.Order, error) {
	var models []codec.OrderModel
	if err := r.readFile(fileOrders, &models); err != nil {
		return nil, err
	}

	return r.conv.ToArrOrder(models), nil
}

func (r *MirrorRepo) WriteOrders(orders []domain.Order) error {
	return r.writeFile(fileOrders, r.conv.ToArrOrderModel(orders))
}

func (r *MirrorRepo) ReadCart() ([]domain.CartItem, error) {
	var models []codec.CartItemModel
	if err := r.readFile(fileCart, &models); err != nil {
		return nil, err
	}

	return r.conv.ToArrCartItem(models), nil
}

func (r *MirrorRepo) WriteCart(items []domain.CartItem) error {
	return r.writeFile(fileCart, r.conv.ToArrCartItemModel(items))
}

// readFile декодирует файл ключа в dst. Отсутствующий файл — пустое значение.
// Повреждённый файл не фатален: предупреждение в лог и пустое значение.
func (r *MirrorRepo) readFile(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warnf("corrupt file %s, treating as empty: %v", name, e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// writeFile атомарно перезаписывает файл ключа.
func (r *MirrorRepo) writeFile(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	path := filepath.Join(r.dir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
