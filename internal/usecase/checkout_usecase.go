package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/google/uuid"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Алжирские номера: +213 или 0, далее оператор 5-7 и восемь цифр
	phoneRe = regexp.MustCompile(`^(\+213|0)[5-7]\d{8}$`)
)

// CheckoutUseCase реализует оформление заказа из текущей корзины.
type CheckoutUseCase struct {
	store       StateStore
	submitDelay time.Duration
	logger      logger.Logger
}

func NewCheckoutUC(store StateStore, submitDelay time.Duration, logger logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		store:       store,
		submitDelay: submitDelay,
		logger:      logger,
	}
}

// Submit оформляет заказ: валидирует покупателя, снимает снимок корзины и её
// итога, выдерживает имитацию сетевой задержки и атомарно фиксирует заказ,
// после чего корзина очищается. Позиции и итог заказа заморожены с этого
// момента: дальнейшие правки каталога их не меняют.
func (c *CheckoutUseCase) Submit(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "CheckoutUseCase.Submit"

	if err := c.validateCustomer(&req.Customer); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Снимок корзины до задержки: заказ собирается из него, а не из
	// состояния на момент коммита.
	items := c.store.Cart()
	if len(items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}
	total := domain.CartTotal(items)

	// Имитация сетевой задержки; всегда завершается успехом, если контекст жив
	if err := c.wait(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	customer := domain.Customer{
		ID:      uuid.NewString(),
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
		City:    req.Customer.City,
		Wilaya:  req.Customer.Wilaya,
	}

	order := domain.NewOrder(uuid.NewString(), customer, items, total, time.Now(), req.Notes)

	c.store.Dispatch(state.AddOrder{Order: *order})
	c.store.Dispatch(state.ClearCart{})

	c.logger.Infof("order %s placed, total %d DA, %d item(s)", order.ID, order.Total, len(order.Items))

	return order, nil
}

func (c *CheckoutUseCase) wait(ctx context.Context) error {
	if c.submitDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.submitDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// validateCustomer проверяет форму покупателя: обязательные поля,
// формат email и алжирского телефона.
func (c *CheckoutUseCase) validateCustomer(form *CustomerForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return e.ErrCustomerName
	}

	if !emailRe.MatchString(form.Email) {
		return e.ErrCustomerEmail
	}

	phone := strings.ReplaceAll(form.Phone, " ", "")
	if !phoneRe.MatchString(phone) {
		return e.ErrCustomerPhone
	}

	if strings.TrimSpace(form.Address) == "" {
		return e.ErrCustomerAddress
	}

	if strings.TrimSpace(form.City) == "" {
		return e.ErrCustomerCity
	}

	if strings.TrimSpace(form.Wilaya) == "" {
		return e.ErrCustomerWilaya
	}

	return nil
}
