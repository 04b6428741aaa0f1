package state

import "github.com/ecommerce-dz/go-store/internal/domain"

// Action — неизменяемая команда, описывающая один переход состояния.
// Набор вариантов закрыт: новые мутации добавляются только новым типом действия.
type Action interface {
	isAction()
}

// SetProducts заменяет коллекцию товаров. Используется только при начальной
// загрузке и не вызывает запись в хранилище.
type SetProducts struct {
	Products []domain.Product
}

// AddProduct добавляет товар в конец каталога.
type AddProduct struct {
	Product domain.Product
}

// UpdateProduct заменяет товар с совпадающим ID.
// Неизвестный ID молча игнорируется.
type UpdateProduct struct {
	Product domain.Product
}

// DeleteProduct удаляет товар по ID. Идемпотентно.
type DeleteProduct struct {
	ID string
}

// SetOrders заменяет коллекцию заказов. Только для начальной загрузки.
type SetOrders struct {
	Orders []domain.Order
}

// AddOrder добавляет заказ в конец списка.
type AddOrder struct {
	Order domain.Order
}

// UpdateOrder заменяет заказ с совпадающим ID.
type UpdateOrder struct {
	Order domain.Order
}

// SetCart заменяет корзину. Только для начальной загрузки.
type SetCart struct {
	Items []domain.CartItem
}

// AddToCart добавляет товар в корзину. Если товар уже присутствует,
// количества складываются.
type AddToCart struct {
	Product  domain.Product
	Quantity int
}

// RemoveFromCart удаляет позицию корзины по ID товара.
type RemoveFromCart struct {
	ProductID string
}

// UpdateCartQuantity выставляет количество позиции напрямую, без ограничения
// по остатку. Значение <= 0 удаляет позицию.
type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart опустошает корзину.
type ClearCart struct{}

// ToggleAdminMode переключает режим администратора. Коллекции не затрагивает.
type ToggleAdminMode struct{}

func (SetProducts) isAction()        {}
func (AddProduct) isAction()         {}
func (UpdateProduct) isAction()      {}
func (DeleteProduct) isAction()      {}
func (SetOrders) isAction()          {}
func (AddOrder) isAction()           {}
func (UpdateOrder) isAction()        {}
func (SetCart) isAction()            {}
func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (UpdateCartQuantity) isAction() {}
func (ClearCart) isAction()          {}
func (ToggleAdminMode) isAction()    {}
