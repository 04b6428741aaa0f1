package state

import "github.com/ecommerce-dz/go-store/internal/domain"

// reduce — чистая функция перехода: по текущему состоянию и действию строит
// новое состояние и отмечает изменённые коллекции. Сама ничего не сохраняет:
// запись в хранилище выполняет Store после применения перехода.
// Неизвестные ID поглощаются без ошибки.
func reduce(st appState, action Action) (appState, changed) {
	var ch changed

	switch a := action.(type) {
	case SetProducts:
		st.products = a.Products

	case AddProduct:
		st.products = append(cloneProducts(st.products), a.Product)
		ch.products = true

	case UpdateProduct:
		next := cloneProducts(st.products)
		for i, p := range next {
			if p.ID == a.Product.ID {
				next[i] = a.Product
			}
		}
		st.products = next
		ch.products = true

	case DeleteProduct:
		next := make([]domain.Product, 0, len(st.products))
		for _, p := range st.products {
			if p.ID != a.ID {
				next = append(next, p)
			}
		}
		st.products = next
		ch.products = true

	case SetOrders:
		st.orders = a.Orders

	case AddOrder:
		st.orders = append(cloneOrders(st.orders), a.Order)
		ch.orders = true

	case UpdateOrder:
		next := cloneOrders(st.orders)
		for i, o := range next {
			if o.ID == a.Order.ID {
				next[i] = a.Order
			}
		}
		st.orders = next
		ch.orders = true

	case SetCart:
		st.cart = a.Items

	case AddToCart:
		st.cart = addToCart(st.cart, a.Product, a.Quantity)
		ch.cart = true

	case RemoveFromCart:
		st.cart = removeFromCart(st.cart, a.ProductID)
		ch.cart = true

	case UpdateCartQuantity:
		if a.Quantity <= 0 {
			st.cart = removeFromCart(st.cart, a.ProductID)
		} else {
			next := cloneCart(st.cart)
			for i, item := range next {
				if item.Product.ID == a.ProductID {
					next[i].Quantity = a.Quantity
				}
			}
			st.cart = next
		}
		ch.cart = true

	case ClearCart:
		st.cart = []domain.CartItem{}
		ch.cart = true

	case ToggleAdminMode:
		st.isAdmin = !st.isAdmin
	}

	return st, ch
}

// addToCart добавляет товар в корзину, сливая количества для уже
// присутствующего товара: на каждый ID товара — не более одной позиции.
func addToCart(cart []domain.CartItem, product domain.Product, quantity int) []domain.CartItem {
	next := cloneCart(cart)
	for i, item := range next {
		if item.Product.ID == product.ID {
			next[i].Quantity += quantity
			return next
		}
	}

	return append(next, *domain.NewCartItem(product, quantity))
}

func removeFromCart(cart []domain.CartItem, productID string) []domain.CartItem {
	next := make([]domain.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}

	return next
}
