package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"lunchtime/stats-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads order events until ctx is done. A message is committed only
// once it has been fully processed; store failures are retried in place.
// Malformed messages are logged and committed.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[stats-svc] starting orders consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[stats-svc] consumer stopped")
				return
			}
			log.Printf("[stats-svc] error reading message: %v", err)
			continue
		}

		if !c.handle(ctx, message) {
			log.Println("[stats-svc] consumer stopped")
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			log.Printf("[stats-svc] failed to commit offset %d: %v", message.Offset, err)
		}
	}
}

// handle processes one message, retrying until it succeeds. It reports false
// when ctx ended first, leaving the message uncommitted.
func (c *Consumer) handle(ctx context.Context, message kafka.Message) bool {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		log.Printf("[stats-svc] error unmarshaling message: %v", err)
		return true
	}

	for {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return true
		}
		log.Printf("[stats-svc] order %s: %v, retrying in %s", event.OrderID, err, c.RetryDelay)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.RetryDelay):
		}
	}
}

// ProcessEvent counts an order's dishes and records the order. Both steps
// skip work already done, so an event can be processed again after a
// partial failure without double counting.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	if event.Type != domain.EventOrderPlaced || event.OrderID == "" {
		return nil
	}

	counted := true
	if err := c.Store.UpdatePopularity(ctx, event); err != nil {
		if !errors.Is(err, domain.ErrDuplicateEvent) {
			return err
		}
		counted = false
	}

	recorded := true
	if err := c.Store.RecordOrder(ctx, event); err != nil {
		if !errors.Is(err, domain.ErrDuplicateEvent) {
			return err
		}
		recorded = false
	}

	if !counted && !recorded {
		log.Printf("[stats-svc] skipping replayed order %s", event.OrderID)
		return nil
	}
	log.Printf("[stats-svc] recorded order %s: %d dishes, total=%d", event.OrderID, len(event.Keywords), event.Total)
	return nil
}
