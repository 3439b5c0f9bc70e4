package service

import (
	"context"

	"lunchtime/lunch-svc/internal/domain"
)

// StateStore is the visitor's persistent key-value store. Get reports
// found=false for a missing key.
type StateStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type CatalogSource interface {
	ListDishes(ctx context.Context) ([]domain.RawDish, error)
}

type OrderStore interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, payload domain.OrderPayload) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type MenuServiceInterface interface {
	Page(ctx context.Context, session string, kind domain.Kind) (*MenuPage, error)
	Select(ctx context.Context, session, keyword string) (*SelectionChange, error)
	Reset(ctx context.Context, session string) (*SelectionChange, error)
	AutoCombo(ctx context.Context, session string) (*SelectionChange, error)
}

type CheckoutServiceInterface interface {
	Page(ctx context.Context, session string) (*CheckoutPage, error)
	RemoveItem(ctx context.Context, session string, category domain.Category) (*SelectionChange, error)
	Submit(ctx context.Context, session string, form domain.DeliveryForm) (*SubmitResult, error)
}

type OrdersServiceInterface interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	QRCode(id string) ([]byte, error)
}

var (
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrdersServiceInterface   = (*OrdersService)(nil)
)
