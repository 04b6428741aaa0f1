package usecase

import (
	"context"

	"github.com/ecommerce-dz/go-store/internal/domain"
)

type CatalogUC interface {
	ListProducts(req *ListProductsReq) []domain.Product
	AddToCart(productID string, quantity int) error
	RemoveFromCart(productID string)
	SetCartQuantity(productID string, quantity int)
	ClearCart()
	Cart() ([]domain.CartItem, int64)
}

type CheckoutUC interface {
	Submit(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
}

type AdminUC interface {
	CreateProduct(req *AddProductReq) (*domain.Product, error)
	UpdateProduct(product domain.Product) error
	DeleteProduct(productID string)
	Orders() []domain.Order
	UpdateOrderStatus(orderID string, next domain.OrderStatus) (*domain.Order, error)
	Stats() domain.DashboardStats
}
