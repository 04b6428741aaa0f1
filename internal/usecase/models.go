package usecase

// CATALOG USECASE

// Сортировки каталога.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// ListProductsReq — параметры выборки каталога.
// Пустые поля означают отсутствие фильтра; MaxPrice == 0 — без потолка цены.
type ListProductsReq struct {
	Category    string
	Search      string
	MaxPrice    int64
	InStockOnly bool
	Sort        string
}

// ADMIN USECASE

// AddProductReq — запрос на добавление товара.
type AddProductReq struct {
	Name        string
	Description string
	Price       int64
	Category    string
	Image       string
	Stock       int
}

// CHECKOUT USECASE

// CustomerForm — данные покупателя из формы оформления заказа.
type CustomerForm struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Wilaya  string
}

// CheckoutReq — запрос на оформление заказа из текущей корзины.
type CheckoutReq struct {
	Customer CustomerForm
	Notes    string
}

// MAPPERS

func NewListProductsReq(category, search string, maxPrice int64, inStockOnly bool, sort string) *ListProductsReq {
	return &ListProductsReq{
		Category:    category,
		Search:      search,
		MaxPrice:    maxPrice,
		InStockOnly: inStockOnly,
		Sort:        sort,
	}
}

func NewAddProductReq(name, description string, price int64, category, image string, stock int) *AddProductReq {
	return &AddProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Stock:       stock,
	}
}

func NewCheckoutReq(customer CustomerForm, notes string) *CheckoutReq {
	return &CheckoutReq{
		Customer: customer,
		Notes:    notes,
	}
}
