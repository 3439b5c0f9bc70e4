package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lunchtime/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	allTimeKey = "stats:popular:alltime"
	dailyTTL   = 7 * 24 * time.Hour
	// seenTTL outlives the orders topic retention so a redelivered event
	// still finds its marker.
	seenTTL = 30 * 24 * time.Hour
)

func dailyKey(day time.Time) string {
	return "stats:popular:daily:" + day.UTC().Format("2006-01-02")
}

func seenKey(orderID string) string {
	return "stats:seen:" + orderID
}

// Store keeps order facts in Postgres and dish popularity in Redis sorted
// sets.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS order_stats (
			order_id      TEXT PRIMARY KEY,
			total         INTEGER NOT NULL,
			discount      INTEGER NOT NULL DEFAULT 0,
			is_full_combo BOOLEAN NOT NULL DEFAULT FALSE,
			dish_count    INTEGER NOT NULL,
			placed_at     TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// RecordOrder stores one row per order. A redelivered event yields
// domain.ErrDuplicateEvent.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO order_stats (order_id, total, discount, is_full_combo, dish_count, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (order_id) DO NOTHING
	`, event.OrderID, event.Total, event.Discount, event.IsFullCombo, len(event.Keywords), s.placedAt(event))
	if err != nil {
		return fmt.Errorf("insert order %s: %w", event.OrderID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateEvent, event.OrderID)
	}
	return nil
}

// UpdatePopularity counts the order's dishes once. The counters and the
// order's seen marker are written in one transaction guarded by WATCH on the
// marker, so an order already counted yields domain.ErrDuplicateEvent.
func (s *Store) UpdatePopularity(ctx context.Context, event domain.OrderEvent) error {
	seen := seenKey(event.OrderID)
	day := dailyKey(s.placedAt(event))

	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		counted, err := tx.Exists(ctx, seen).Result()
		if err != nil {
			return err
		}
		if counted > 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEvent, event.OrderID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, keyword := range event.Keywords {
				pipe.ZIncrBy(ctx, allTimeKey, 1, keyword)
				pipe.ZIncrBy(ctx, day, 1, keyword)
			}
			pipe.Expire(ctx, day, dailyTTL)
			pipe.Set(ctx, seen, 1, seenTTL)
			return nil
		})
		return err
	}, seen)
	if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
		return fmt.Errorf("update popularity: %w", err)
	}
	return err
}

func (s *Store) TopDishes(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error) {
	key := allTimeKey
	if period == domain.PeriodToday {
		key = dailyKey(s.now())
	}

	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	dishes := make([]domain.DishPopularity, 0, len(result))
	for _, member := range result {
		keyword, _ := member.Member.(string)
		dishes = append(dishes, domain.DishPopularity{
			Keyword: keyword,
			Orders:  int(member.Score),
		})
	}
	return dishes, nil
}

func (s *Store) Summary(ctx context.Context) (*domain.Summary, error) {
	var summary domain.Summary
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_full_combo),
		       COALESCE(SUM(total), 0),
		       COALESCE(SUM(discount), 0)
		FROM order_stats
	`).Scan(&summary.Orders, &summary.FullCombos, &summary.Revenue, &summary.Discounts)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Store) placedAt(event domain.OrderEvent) time.Time {
	if event.Timestamp.IsZero() {
		return s.now()
	}
	return event.Timestamp
}
