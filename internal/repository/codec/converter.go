package codec

import "github.com/ecommerce-dz/go-store/internal/domain"

// StateConverter переводит доменные коллекции в модели хранилища и обратно.
type StateConverter interface {
	ToArrProductModel(products []domain.Product) []ProductModel
	ToArrProduct(models []ProductModel) []domain.Product

	ToArrCartItemModel(items []domain.CartItem) []CartItemModel
	ToArrCartItem(models []CartItemModel) []domain.CartItem

	ToArrOrderModel(orders []domain.Order) []OrderModel
	ToArrOrder(models []OrderModel) []domain.Order
}

type StateConverterImpl struct{}

func NewStateConverterImpl() *StateConverterImpl {
	return &StateConverterImpl{}
}

func (c *StateConverterImpl) ToProductModel(product domain.Product) ProductModel {
	return ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

func (c *StateConverterImpl) ToProduct(model ProductModel) domain.Product {
	return domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Category:    model.Category,
		Image:       model.Image,
		Stock:       model.Stock,
		CreatedAt:   model.CreatedAt,
	}
}

func (c *StateConverterImpl) ToArrProductModel(products []domain.Product) []ProductModel {
	models := make([]ProductModel, 0, len(products))
	for _, product := range products {
		models = append(models, c.ToProductModel(product))
	}

	return models
}

func (c *StateConverterImpl) ToArrProduct(models []ProductModel) []domain.Product {
	products := make([]domain.Product, 0, len(models))
	for _, model := range models {
		products = append(products, c.ToProduct(model))
	}

	return products
}

func (c *StateConverterImpl) ToCartItemModel(item domain.CartItem) CartItemModel {
	return CartItemModel{
		Product:  c.ToProductModel(item.Product),
		Quantity: item.Quantity,
	}
}

func (c *StateConverterImpl) ToCartItem(model CartItemModel) domain.CartItem {
	return domain.CartItem{
		Product:  c.ToProduct(model.Product),
		Quantity: model.Quantity,
	}
}

func (c *StateConverterImpl) ToArrCartItemModel(items []domain.CartItem) []CartItemModel {
	models := make([]CartItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, c.ToCartItemModel(item))
	}

	return models
}

func (c *StateConverterImpl) ToArrCartItem(models []CartItemModel) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(models))
	for _, model := range models {
		items = append(items, c.ToCartItem(model))
	}

	return items
}

func (c *StateConverterImpl) ToOrderModel(order domain.Order) OrderModel {
	return OrderModel{
		ID:            order.ID,
		Customer:      CustomerModel(order.Customer),
		Items:         c.ToArrCartItemModel(order.Items),
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		Notes:         order.Notes,
	}
}

func (c *StateConverterImpl) ToOrder(model OrderModel) domain.Order {
	return domain.Order{
		ID:            model.ID,
		Customer:      domain.Customer(model.Customer),
		Items:         c.ToArrCartItem(model.Items),
		Total:         model.Total,
		Status:        domain.OrderStatus(model.Status),
		PaymentMethod: model.PaymentMethod,
		CreatedAt:     model.CreatedAt,
		Notes:         model.Notes,
	}
}

func (c *StateConverterImpl) ToArrOrderModel(orders []domain.Order) []OrderModel {
	models := make([]OrderModel, 0, len(orders))
	for _, order := range orders {
		models = append(models, c.ToOrderModel(order))
	}

	return models
}

func (c *StateConverterImpl) ToArrOrder(models []OrderModel) []domain.Order {
	orders := make([]domain.Order, 0, len(models))
	for _, model := range models {
		orders = append(orders, c.ToOrder(model))
	}

	return orders
}
