package usecase

import (
	"sort"
	"strings"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
)

// CatalogUseCase реализует витрину: выборку каталога и операции с корзиной.
type CatalogUseCase struct {
	store  StateStore
	logger logger.Logger
}

func NewCatalogUC(store StateStore, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		store:  store,
		logger: logger,
	}
}

// ListProducts возвращает товары каталога с фильтрацией по категории,
// потолку цены, наличию на складе, подстрочным поиском по названию
// и описанию и сортировкой.
func (c *CatalogUseCase) ListProducts(req *ListProductsReq) []domain.Product {
	products := c.store.Products()

	filtered := make([]domain.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(req.Search))
	for _, p := range products {
		if req.Category != "" && p.Category != req.Category {
			continue
		}

		if req.MaxPrice > 0 && p.Price > req.MaxPrice {
			continue
		}

		if req.InStockOnly && p.Stock <= 0 {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		filtered = append(filtered, p)
	}

	sortProducts(filtered, req.Sort)

	return filtered
}

// AddToCart кладёт товар в корзину. Товар без остатка не добавляется;
// количества одинаковых товаров сливаются в одну позицию.
func (c *CatalogUseCase) AddToCart(productID string, quantity int) error {
	const op = "CatalogUseCase.AddToCart"

	product, ok := c.findProduct(productID)
	if !ok {
		return e.Wrap(op, e.ErrProductNotFound)
	}

	if product.Stock <= 0 {
		return e.Wrap(op, e.ErrOutOfStock)
	}

	if quantity < 1 {
		quantity = 1
	}

	c.store.Dispatch(state.AddToCart{Product: product, Quantity: quantity})

	return nil
}

// RemoveFromCart удаляет позицию корзины.
func (c *CatalogUseCase) RemoveFromCart(productID string) {
	c.store.Dispatch(state.RemoveFromCart{ProductID: productID})
}

// SetCartQuantity выставляет количество позиции; значение <= 0 удаляет её.
// К остатку количество не привязывается — это ответственность вызывающего.
func (c *CatalogUseCase) SetCartQuantity(productID string, quantity int) {
	c.store.Dispatch(state.UpdateCartQuantity{ProductID: productID, Quantity: quantity})
}

// ClearCart опустошает корзину.
func (c *CatalogUseCase) ClearCart() {
	c.store.Dispatch(state.ClearCart{})
}

// Cart возвращает позиции корзины и её итог.
func (c *CatalogUseCase) Cart() ([]domain.CartItem, int64) {
	items := c.store.Cart()
	return items, domain.CartTotal(items)
}

func (c *CatalogUseCase) findProduct(productID string) (domain.Product, bool) {
	for _, p := range c.store.Products() {
		if p.ID == productID {
			return p, true
		}
	}

	return domain.Product{}, false
}

func sortProducts(products []domain.Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
