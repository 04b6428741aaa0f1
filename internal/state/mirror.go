package state

import "github.com/ecommerce-dz/go-store/internal/domain"

// Mirror — зеркало состояния в локальном хранилище: три независимых ключа,
// каждый перезаписывается целиком. Отсутствующее или нечитаемое значение
// возвращается как пустая коллекция.
type Mirror interface {
	ReadProducts() ([]domain.Product, error)
	WriteProducts(products []domain.Product) error

	ReadOrders() ([]domain.Order, error)
	WriteOrders(orders []domain.Order) error

	ReadCart() ([]domain.CartItem, error)
	WriteCart(items []domain.CartItem) error
}
