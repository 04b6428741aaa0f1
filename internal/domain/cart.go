package domain

// CartItem описывает позицию корзины.
// Product хранится по значению: это снимок товара на момент добавления,
// последующие правки каталога позицию не меняют.
type CartItem struct {
	Product  Product
	Quantity int
}

func NewCartItem(product Product, quantity int) *CartItem {
	return &CartItem{
		Product:  product,
		Quantity: quantity,
	}
}

// Subtotal возвращает стоимость позиции.
func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// CartTotal возвращает суммарную стоимость позиций корзины.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}
