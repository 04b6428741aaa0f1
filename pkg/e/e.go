package e

import "fmt"

var (
	// Ошибки валидации товара
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must be a whole amount of dinars")
	ErrInvalidStock        = fmt.Errorf("stock must not be negative")

	// Ошибки оформления заказа
	ErrEmptyCart       = fmt.Errorf("cart is empty")
	ErrOutOfStock      = fmt.Errorf("product is out of stock")
	ErrCustomerName    = fmt.Errorf("customer name is required")
	ErrCustomerEmail   = fmt.Errorf("invalid customer email")
	ErrCustomerPhone   = fmt.Errorf("invalid customer phone")
	ErrCustomerAddress = fmt.Errorf("customer address is required")
	ErrCustomerCity    = fmt.Errorf("customer city is required")
	ErrCustomerWilaya  = fmt.Errorf("customer wilaya is required")

	// Ошибки управления заказами
	ErrOrderNotFound       = fmt.Errorf("order not found")
	ErrProductNotFound     = fmt.Errorf("product not found")
	ErrUnknownOrderStatus  = fmt.Errorf("unknown order status")
	ErrIllegalStatusChange = fmt.Errorf("illegal order status transition")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
