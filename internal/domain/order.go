package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentCOD — единственный поддерживаемый способ оплаты (наличными при получении).
const PaymentCOD = "cod"

// statusTransitions задаёт граф допустимых переходов статуса.
// delivered и cancelled — терминальные состояния.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped},
	StatusShipped:   {StatusDelivered},
}

// Valid сообщает, известен ли статус.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}

	return false
}

// Terminal сообщает, является ли статус терминальным.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo сообщает, допустим ли переход из текущего статуса в next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Customer — данные покупателя, фиксируемые при оформлении заказа.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Wilaya  string
}

// Order описывает оформленный заказ.
// Items и Total фиксируются при создании: последующие правки каталога
// уже размещённый заказ не меняют.
type Order struct {
	ID            string
	Customer      Customer
	Items         []CartItem
	Total         int64
	Status        OrderStatus
	PaymentMethod string
	CreatedAt     time.Time
	Notes         string
}

func NewOrder(id string, customer Customer, items []CartItem, total int64, createdAt time.Time, notes string) *Order {
	return &Order{
		ID:            id,
		Customer:      customer,
		Items:         items,
		Total:         total,
		Status:        StatusPending,
		PaymentMethod: PaymentCOD,
		CreatedAt:     createdAt,
		Notes:         notes,
	}
}
