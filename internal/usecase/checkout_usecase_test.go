package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecommerce-dz/go-store/internal/domain"
	"github.com/ecommerce-dz/go-store/internal/state"
	"github.com/ecommerce-dz/go-store/internal/usecase"
	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() usecase.CustomerForm {
	return usecase.CustomerForm{
		Name:    "Amine Benali",
		Email:   "amine@example.com",
		Phone:   "0550123456",
		Address: "12 rue Didouche Mourad",
		City:    "Alger-Centre",
		Wilaya:  "Alger",
	}
}

func checkoutSetup(t *testing.T) (*usecase.CheckoutUseCase, *state.Store, *memMirror) {
	t.Helper()

	mirror := &memMirror{}
	store := state.NewStore(mirror, nopLogger{})
	store.Load(catalogFixture())

	return usecase.NewCheckoutUC(store, 0, nopLogger{}), store, mirror
}

func TestCheckoutSubmit(t *testing.T) {
	uc, store, mirror := checkoutSetup(t)

	store.Dispatch(state.AddToCart{Product: catalogFixture()[0], Quantity: 3})
	wantItems := store.Cart()

	order, err := uc.Submit(context.Background(), usecase.NewCheckoutReq(validCustomer(), "sonnez deux fois"))
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentCOD, order.PaymentMethod)
	assert.Equal(t, wantItems, order.Items)
	assert.Equal(t, int64(3000), order.Total)
	assert.Equal(t, "Amine Benali", order.Customer.Name)
	assert.Equal(t, "sonnez deux fois", order.Notes)

	// заказ зафиксирован, корзина опустошена и зазеркалирована пустой
	require.Len(t, store.Orders(), 1)
	assert.Empty(t, store.Cart())
	assert.Empty(t, mirror.cart)
	require.Len(t, mirror.orders, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, _, _ := checkoutSetup(t)

	_, err := uc.Submit(context.Background(), usecase.NewCheckoutReq(validCustomer(), ""))
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestCheckoutCustomerValidation(t *testing.T) {
	uc, store, _ := checkoutSetup(t)
	store.Dispatch(state.AddToCart{Product: catalogFixture()[0], Quantity: 1})

	cases := []struct {
		name    string
		mutate  func(*usecase.CustomerForm)
		wantErr error
	}{
		{"empty name", func(f *usecase.CustomerForm) { f.Name = "  " }, e.ErrCustomerName},
		{"bad email", func(f *usecase.CustomerForm) { f.Email = "not-an-email" }, e.ErrCustomerEmail},
		{"bad phone", func(f *usecase.CustomerForm) { f.Phone = "123" }, e.ErrCustomerPhone},
		{"foreign phone", func(f *usecase.CustomerForm) { f.Phone = "+33612345678" }, e.ErrCustomerPhone},
		{"empty address", func(f *usecase.CustomerForm) { f.Address = "" }, e.ErrCustomerAddress},
		{"empty city", func(f *usecase.CustomerForm) { f.City = "" }, e.ErrCustomerCity},
		{"empty wilaya", func(f *usecase.CustomerForm) { f.Wilaya = "" }, e.ErrCustomerWilaya},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validCustomer()
			tc.mutate(&form)

			_, err := uc.Submit(context.Background(), usecase.NewCheckoutReq(form, ""))
			assert.ErrorIs(t, err, tc.wantErr)

			// неудачная попытка ничего не меняет
			assert.Empty(t, store.Orders())
			assert.Len(t, store.Cart(), 1)
		})
	}

	t.Run("phone with spaces is accepted", func(t *testing.T) {
		form := validCustomer()
		form.Phone = "05 50 12 34 56"

		_, err := uc.Submit(context.Background(), usecase.NewCheckoutReq(form, ""))
		assert.NoError(t, err)
	})
}

func TestCheckoutCancelledContext(t *testing.T) {
	mirror := &memMirror{}
	store := state.NewStore(mirror, nopLogger{})
	store.Load(catalogFixture())
	store.Dispatch(state.AddToCart{Product: catalogFixture()[0], Quantity: 1})

	uc := usecase.NewCheckoutUC(store, 50*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Submit(ctx, usecase.NewCheckoutReq(validCustomer(), ""))
	assert.ErrorIs(t, err, context.Canceled)

	// отменённая отправка не фиксирует заказ и не трогает корзину
	assert.Empty(t, store.Orders())
	assert.Len(t, store.Cart(), 1)
}
