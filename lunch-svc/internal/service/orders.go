package service

import (
	"context"
	"fmt"
	"sort"

	"lunchtime/lunch-svc/internal/domain"
)

type OrdersService struct {
	orders    OrderStore
	qrEncoder QRGenerator
}

func NewOrdersService(orders OrderStore, qr QRGenerator) *OrdersService {
	return &OrdersService{orders: orders, qrEncoder: qr}
}

// List returns the placed orders, newest first.
func (s *OrdersService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

// Get finds one order in the listing; the mock backend is only ever listed.
func (s *OrdersService) Get(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
}

func (s *OrdersService) Delete(ctx context.Context, id string) error {
	if err := s.orders.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}

func (s *OrdersService) QRCode(id string) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("qr codes are disabled")
	}
	return s.qrEncoder.Generate(id)
}
