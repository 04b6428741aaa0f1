package codec

import "time"

// ProductModel представляет товар в сериализованном виде хранилища.
type ProductModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CartItemModel представляет позицию корзины в хранилище.
type CartItemModel struct {
	Product  ProductModel `json:"product"`
	Quantity int          `json:"quantity"`
}

// CustomerModel представляет покупателя, встроенного в заказ.
type CustomerModel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Wilaya  string `json:"wilaya"`
}

// OrderModel представляет заказ в хранилище.
type OrderModel struct {
	ID            string          `json:"id"`
	Customer      CustomerModel   `json:"customer"`
	Items         []CartItemModel `json:"items"`
	Total         int64           `json:"total"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	Notes         string          `json:"notes,omitempty"`
}
