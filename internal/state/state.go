package state

import "github.com/ecommerce-dz/go-store/internal/domain"

// appState — полное состояние приложения: три коллекции и флаг режима.
type appState struct {
	products []domain.Product
	orders   []domain.Order
	cart     []domain.CartItem
	isAdmin  bool
}

// changed отмечает, какие коллекции изменил редьюсер.
// По нему эффектный слой решает, что зеркалировать в хранилище.
type changed struct {
	products bool
	orders   bool
	cart     bool
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// cloneOrders копирует и сами заказы, и их позиции: срез Items не должен
// делить память с состоянием хранилища.
func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, order := range orders {
		order.Items = cloneCart(order.Items)
		out[i] = order
	}
	return out
}

func cloneCart(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}
