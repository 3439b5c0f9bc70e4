package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"lunchtime/lunch-svc/internal/domain"
	"lunchtime/lunch-svc/internal/mocks"
	"lunchtime/lunch-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 30, 0, 0, time.FixedZone("MSK", 3*60*60))

func validForm() domain.DeliveryForm {
	return domain.DeliveryForm{
		FullName:     "Ivan Petrov",
		Phone:        "+7 900 000-00-00",
		Address:      "Tverskaya 1",
		DeliveryType: domain.DeliveryASAP,
	}
}

func TestDeliveryTimeLabel(t *testing.T) {
	tests := []struct {
		name string
		form domain.DeliveryForm
		want string
	}{
		{
			name: "as soon as possible",
			form: domain.DeliveryForm{DeliveryType: domain.DeliveryASAP, DeliveryTime: "18:00"},
			want: "As soon as possible (07:00 to 23:00)",
		},
		{
			name: "specific time",
			form: domain.DeliveryForm{DeliveryType: domain.DeliverySpecific, DeliveryTime: "18:30"},
			want: "By 18:30",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.DeliveryTimeLabel(testCase.form))
		})
	}
}

func TestBuildPayload(t *testing.T) {
	catalog := loadCatalog(t, newMemoryStore(), lunchRecords())
	adapter := service.NewOrderSubmissionAdapter(domain.DefaultComboRules).WithClock(func() time.Time { return fixedNow })

	tests := []struct {
		name      string
		selection domain.Selection
		wantTotal int
		wantFull  bool
	}{
		{
			name: "full combo discounted",
			selection: domain.Selection{
				domain.CategorySoup: "tomato-soup", domain.CategoryMain: "chicken", domain.CategorySalad: "greek",
			},
			wantTotal: 330,
			wantFull:  true,
		},
		{
			name:      "partial order",
			selection: domain.Selection{domain.CategoryDrink: "juice", domain.CategoryDessert: "cake"},
			wantTotal: 150,
		},
		{
			name:      "empty selection still builds",
			selection: domain.Selection{},
			wantTotal: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			submission := adapter.BuildPayload(testCase.selection, catalog, validForm())

			assert.Equal(t, "Ivan Petrov", submission.Payload.CustomerName)
			assert.Equal(t, "+7 900 000-00-00", submission.Payload.CustomerPhone)
			assert.Equal(t, "Tverskaya 1", submission.Payload.DeliveryAddress)
			assert.Equal(t, "As soon as possible (07:00 to 23:00)", submission.Payload.DeliveryTime)
			assert.Equal(t, "2025-03-14T09:30:00Z", submission.Payload.Date)
			assert.True(t, submission.PlacedAt.Equal(fixedNow))
			assert.Equal(t, testCase.wantTotal, submission.Payload.Total)
			assert.Equal(t, testCase.wantFull, submission.Combo.IsFullCombo)
		})
	}
}

func newCheckoutService(source service.CatalogSource, orders service.OrderStore, store service.StateStore, publisher service.OrderPublisher) *service.CheckoutService {
	rules := domain.DefaultComboRules
	adapter := service.NewOrderSubmissionAdapter(rules).WithClock(func() time.Time { return fixedNow })
	return service.NewCheckoutService(source, orders, store, publisher, adapter, rules)
}

func seedComboSelection(t *testing.T, store service.StateStore) {
	t.Helper()
	loadCatalog(t, store, lunchRecords())
	state := newSelection(t, store)
	for _, pick := range []struct {
		category domain.Category
		keyword  string
	}{
		{domain.CategorySoup, "tomato-soup"},
		{domain.CategoryMain, "chicken"},
		{domain.CategorySalad, "greek"},
	} {
		_, err := state.Select(context.Background(), pick.category, pick.keyword)
		require.NoError(t, err)
	}
}

func TestCheckoutPage(t *testing.T) {
	store := newMemoryStore()
	seedComboSelection(t, store)

	page, err := newCheckoutService(new(mocks.CatalogSource), new(mocks.OrderStore), store, nil).Page(context.Background(), testSession)

	require.NoError(t, err)
	assert.Equal(t, 380, page.Summary.Subtotal)
	assert.Equal(t, 330, page.Summary.Total)
	assert.Len(t, page.Summary.Items, 3)
	assert.Empty(t, page.Advisories)
}

func TestCheckoutPage_EmptySelection(t *testing.T) {
	store := newMemoryStore()
	loadCatalog(t, store, lunchRecords())

	page, err := newCheckoutService(new(mocks.CatalogSource), new(mocks.OrderStore), store, nil).Page(context.Background(), testSession)

	require.NoError(t, err)
	require.Len(t, page.Advisories, 1)
	assert.Equal(t, service.EmptyOrderAdvisory(), page.Advisories[0])
	assert.Empty(t, page.Summary.Items)
}

func TestCheckoutPage_FetchesWhenCacheEmpty(t *testing.T) {
	tests := []struct {
		name      string
		fetchErr  error
		wantErr   error
		wantItems int
	}{
		{name: "fetch succeeds", wantItems: 1},
		{name: "fetch fails", fetchErr: fmt.Errorf("%w: timeout", domain.ErrNetworkFailure), wantErr: domain.ErrNetworkFailure},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := newMemoryStore()
			state := newSelection(t, store)
			_, err := state.Select(context.Background(), domain.CategoryMain, "chicken")
			require.NoError(t, err)

			source := new(mocks.CatalogSource)
			if testCase.fetchErr != nil {
				source.On("ListDishes", mock.Anything).Return(nil, testCase.fetchErr).Once()
			} else {
				source.On("ListDishes", mock.Anything).Return(lunchRecords(), nil).Once()
			}

			page, err := newCheckoutService(source, new(mocks.OrderStore), store, nil).Page(context.Background(), testSession)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, page)
			} else {
				require.NoError(t, err)
				assert.Len(t, page.Summary.Items, testCase.wantItems)
			}
			source.AssertExpectations(t)
		})
	}
}

func TestCheckoutRemoveItem(t *testing.T) {
	store := newMemoryStore()
	seedComboSelection(t, store)

	change, err := newCheckoutService(new(mocks.CatalogSource), new(mocks.OrderStore), store, nil).
		RemoveItem(context.Background(), testSession, domain.CategorySalad)

	require.NoError(t, err)
	assert.Equal(t, domain.CategorySalad, change.Category)
	assert.Equal(t, "greek", change.Previous)
	assert.False(t, change.Summary.IsFullCombo)
	assert.Equal(t, 300, change.Summary.Total)
	assert.Equal(t, "", newSelection(t, store).Get(domain.CategorySalad))
}

func TestCheckoutSubmit_Success(t *testing.T) {
	store := newMemoryStore()
	seedComboSelection(t, store)

	orders := new(mocks.OrderStore)
	orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(p domain.OrderPayload) bool {
		return p.Total == 330 && p.Date == "2025-03-14T09:30:00Z"
	})).Return(func(_ context.Context, p domain.OrderPayload) *domain.Order {
		return &domain.Order{ID: "17", OrderPayload: p}
	}, nil).Once()

	publisher := new(mocks.OrderPublisher)
	publisher.On("PublishOrderPlaced", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == domain.EventOrderPlaced && e.OrderID == "17" && e.IsFullCombo &&
			e.Discount == 50 && len(e.Keywords) == 3 && e.Timestamp.Equal(fixedNow)
	})).Return(nil).Once()

	result, err := newCheckoutService(new(mocks.CatalogSource), orders, store, publisher).
		Submit(context.Background(), testSession, validForm())

	require.NoError(t, err)
	assert.Equal(t, "17", result.Order.ID)
	assert.Equal(t, 330, result.Order.Total)
	assert.Equal(t, "/api/orders/17/qrcode", result.QRCodeURL)
	assert.Equal(t, service.AdvisorySuccess, result.Advisory.Type)
	assert.Equal(t, 0, newSelection(t, store).NonEmptyCount())

	orders.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutSubmit_CreateFailureKeepsSelection(t *testing.T) {
	store := newMemoryStore()
	seedComboSelection(t, store)

	orders := new(mocks.OrderStore)
	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: POST /orders: status 503", domain.ErrNetworkFailure)).Once()
	publisher := new(mocks.OrderPublisher)

	result, err := newCheckoutService(new(mocks.CatalogSource), orders, store, publisher).
		Submit(context.Background(), testSession, validForm())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.Equal(t, 3, newSelection(t, store).NonEmptyCount())
	orders.AssertExpectations(t)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestCheckoutSubmit_PublishFailureIsNotFatal(t *testing.T) {
	store := newMemoryStore()
	seedComboSelection(t, store)

	orders := new(mocks.OrderStore)
	orders.On("CreateOrder", mock.Anything, mock.Anything).Return(&domain.Order{ID: "5"}, nil).Once()
	publisher := new(mocks.OrderPublisher)
	publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(errors.New("broker unavailable")).Once()

	result, err := newCheckoutService(new(mocks.CatalogSource), orders, store, publisher).
		Submit(context.Background(), testSession, validForm())

	require.NoError(t, err)
	assert.Equal(t, "5", result.Order.ID)
	assert.Equal(t, 0, newSelection(t, store).NonEmptyCount())
	publisher.AssertExpectations(t)
}
