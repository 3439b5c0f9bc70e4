package service

import (
	"context"

	"lunchtime/stats-svc/internal/domain"
	"lunchtime/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
	UpdatePopularity(ctx context.Context, event domain.OrderEvent) error
	TopDishes(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent) error
}

type StatsInterface interface {
	Popular(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ StatsInterface    = (*StatsService)(nil)
)
