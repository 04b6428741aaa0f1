package state

import (
	"sync"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
)

// Store — единственный владелец состояния приложения. Все мутации проходят
// через Dispatch с закрытым набором действий; чтения возвращают копии.
// Ошибка записи зеркала логируется и не прерывает работу: до конца сессии
// состояние живёт в памяти.
type Store struct {
	mu     sync.Mutex
	state  appState
	mirror Mirror
	logger logger.Logger
}

func NewStore(mirror Mirror, logger logger.Logger) *Store {
	return &Store{
		state: appState{
			products: []domain.Product{},
			orders:   []domain.Order{},
			cart:     []domain.CartItem{},
		},
		mirror: mirror,
		logger: logger,
	}
}

// Load считывает все три ключа зеркала и заполняет начальное состояние.
// Если товаров в хранилище нет, каталог заполняется встроенным набором seed
// и сразу зеркалируется.
func (s *Store) Load(seed []domain.Product) {
	const op = "state.Store.Load"

	products, err := s.mirror.ReadProducts()
	if err != nil {
		s.logger.Warnf("failed to read products, starting empty: %v", e.Wrap(op, err))
	}

	if len(products) == 0 {
		products = seed
		if err := s.mirror.WriteProducts(seed); err != nil {
			s.logger.Warnf("failed to persist seed catalog: %v", e.Wrap(op, err))
		}
	}
	s.Dispatch(SetProducts{Products: products})

	orders, err := s.mirror.ReadOrders()
	if err != nil {
		s.logger.Warnf("failed to read orders, starting empty: %v", e.Wrap(op, err))
	}
	s.Dispatch(SetOrders{Orders: orders})

	cart, err := s.mirror.ReadCart()
	if err != nil {
		s.logger.Warnf("failed to read cart, starting empty: %v", e.Wrap(op, err))
	}
	s.Dispatch(SetCart{Items: cart})
}

// Dispatch применяет действие к состоянию и синхронно зеркалирует изменённые
// коллекции. Возврат из Dispatch означает, что запись либо выполнена, либо
// запротоколирована как неудавшаяся.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ch := reduce(s.state, action)
	s.state = next

	s.persist(ch)
}

// persist зеркалирует отмеченные коллекции. Неудача — не фатальна:
// предупреждение в лог, работа продолжается в памяти.
func (s *Store) persist(ch changed) {
	const op = "state.Store.persist"

	if ch.products {
		if err := s.mirror.WriteProducts(cloneProducts(s.state.products)); err != nil {
			s.logger.Warnf("failed to persist products: %v", e.Wrap(op, err))
		}
	}

	if ch.orders {
		if err := s.mirror.WriteOrders(cloneOrders(s.state.orders)); err != nil {
			s.logger.Warnf("failed to persist orders: %v", e.Wrap(op, err))
		}
	}

	if ch.cart {
		if err := s.mirror.WriteCart(cloneCart(s.state.cart)); err != nil {
			s.logger.Warnf("failed to persist cart: %v", e.Wrap(op, err))
		}
	}
}

// Products возвращает копию каталога.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.state.products)
}

// Orders возвращает копию списка заказов.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.state.orders)
}

// Cart возвращает копию корзины.
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.state.cart)
}

// IsAdmin возвращает текущий режим интерфейса.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.isAdmin
}

// DashboardStats вычисляет показатели панели за один проход по заказам.
// Результат не кэшируется: коллекции малы и живут в памяти.
func (s *Store) DashboardStats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardStats{
		TotalOrders:   len(s.state.orders),
		TotalProducts: len(s.state.products),
	}

	for _, order := range s.state.orders {
		stats.TotalSales += order.Total
		if order.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}

	return stats
}
