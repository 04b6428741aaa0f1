package usecase

import (
	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/state"
)

// StateStore — вход в хранилище состояния: закрытый набор действий плюс
// чтение текущих коллекций. Чтения возвращают копии.
type StateStore interface {
	Dispatch(action state.Action)
	Products() []domain.Product
	Orders() []domain.Order
	Cart() []domain.CartItem
	IsAdmin() bool
	DashboardStats() domain.DashboardStats
}
