package usecase

import (
	"strings"
	"time"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/google/uuid"
)

// AdminUseCase реализует административные операции: управление каталогом
// и продвижение статусов заказов.
type AdminUseCase struct {
	store  StateStore
	logger logger.Logger
}

func NewAdminUC(store StateStore, logger logger.Logger) *AdminUseCase {
	return &AdminUseCase{
		store:  store,
		logger: logger,
	}
}

// CreateProduct валидирует запрос и добавляет товар с новым ID в каталог.
func (a *AdminUseCase) CreateProduct(req *AddProductReq) (*domain.Product, error) {
	const op = "AdminUseCase.CreateProduct"

	if err := validateProduct(req.Name, req.Price, req.Stock); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		uuid.NewString(),
		req.Name,
		req.Description,
		req.Price,
		req.Category,
		req.Image,
		req.Stock,
		time.Now(),
	)

	a.store.Dispatch(state.AddProduct{Product: *product})
	a.logger.Infof("product %s created: %s", product.ID, product.Name)

	return product, nil
}

// UpdateProduct заменяет товар с совпадающим ID целиком.
// Неизвестный ID молча поглощается хранилищем; ID не меняется никогда.
func (a *AdminUseCase) UpdateProduct(product domain.Product) error {
	const op = "AdminUseCase.UpdateProduct"

	if err := validateProduct(product.Name, product.Price, product.Stock); err != nil {
		return e.Wrap(op, err)
	}

	a.store.Dispatch(state.UpdateProduct{Product: product})

	return nil
}

// DeleteProduct удаляет товар из каталога. Идемпотентно.
func (a *AdminUseCase) DeleteProduct(productID string) {
	a.store.Dispatch(state.DeleteProduct{ID: productID})
}

// Orders возвращает все заказы.
func (a *AdminUseCase) Orders() []domain.Order {
	return a.store.Orders()
}

// UpdateOrderStatus продвигает заказ по графу статусов.
// Само хранилище переходы не проверяет и примет любой статус;
// законность перехода — ответственность этого слоя.
func (a *AdminUseCase) UpdateOrderStatus(orderID string, next domain.OrderStatus) (*domain.Order, error) {
	const op = "AdminUseCase.UpdateOrderStatus"

	if !next.Valid() {
		return nil, e.Wrap(op, e.ErrUnknownOrderStatus)
	}

	order, ok := a.findOrder(orderID)
	if !ok {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, e.Wrap(op, e.ErrIllegalStatusChange)
	}

	order.Status = next
	a.store.Dispatch(state.UpdateOrder{Order: order})
	a.logger.Infof("order %s status -> %s", order.ID, next)

	return &order, nil
}

// Stats возвращает показатели панели администратора.
func (a *AdminUseCase) Stats() domain.DashboardStats {
	return a.store.DashboardStats()
}

func (a *AdminUseCase) findOrder(orderID string) (domain.Order, bool) {
	for _, order := range a.store.Orders() {
		if order.ID == orderID {
			return order, true
		}
	}

	return domain.Order{}, false
}

// validateProduct проверяет корректность полей товара.
func validateProduct(name string, price int64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if price < 0 {
		return e.ErrInvalidPrice
	}

	if stock < 0 {
		return e.ErrInvalidStock
	}

	return nil
}
