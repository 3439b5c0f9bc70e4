package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"lunchtime/lunch-svc/internal/domain"
)

const asapDeliveryTime = "As soon as possible (07:00 to 23:00)"

type Submission struct {
	Payload  domain.OrderPayload
	Combo    domain.ComboResult
	PlacedAt time.Time
}

// OrderSubmissionAdapter turns a selection and a delivery form into an
// order payload. It builds a payload from any selection, even an empty one;
// whether to submit is the caller's call.
type OrderSubmissionAdapter struct {
	rules domain.ComboRules
	now   func() time.Time
}

func NewOrderSubmissionAdapter(rules domain.ComboRules) *OrderSubmissionAdapter {
	return &OrderSubmissionAdapter{rules: rules, now: time.Now}
}

func (a *OrderSubmissionAdapter) WithClock(now func() time.Time) *OrderSubmissionAdapter {
	a.now = now
	return a
}

func (a *OrderSubmissionAdapter) BuildPayload(selection domain.Selection, catalog DishLookup, form domain.DeliveryForm) Submission {
	combo := Evaluate(selection, catalog, a.rules)
	placedAt := a.now().UTC()
	return Submission{
		Payload: domain.OrderPayload{
			CustomerName:    form.FullName,
			CustomerPhone:   form.Phone,
			DeliveryAddress: form.Address,
			DeliveryTime:    DeliveryTimeLabel(form),
			Total:           combo.Total,
			Date:            placedAt.Format(time.RFC3339Nano),
		},
		Combo:    combo,
		PlacedAt: placedAt,
	}
}

func DeliveryTimeLabel(form domain.DeliveryForm) string {
	if form.DeliveryType == domain.DeliveryASAP {
		return asapDeliveryTime
	}
	return "By " + form.DeliveryTime
}

// CheckoutService backs the checkout page.
type CheckoutService struct {
	source    CatalogSource
	orders    OrderStore
	store     StateStore
	publisher OrderPublisher
	adapter   *OrderSubmissionAdapter
	rules     domain.ComboRules
	qrLink    func(id string) string
}

func NewCheckoutService(source CatalogSource, orders OrderStore, store StateStore, publisher OrderPublisher, adapter *OrderSubmissionAdapter, rules domain.ComboRules) *CheckoutService {
	if adapter == nil {
		adapter = NewOrderSubmissionAdapter(rules)
	}
	return &CheckoutService{
		source:    source,
		orders:    orders,
		store:     store,
		publisher: publisher,
		adapter:   adapter,
		rules:     rules,
		qrLink:    QRLink,
	}
}

// Page restores what the menu page persisted. Without a cached catalog the
// dishes are fetched once and cached.
func (s *CheckoutService) Page(ctx context.Context, session string) (*CheckoutPage, error) {
	page, err := s.open(ctx, session)
	if err != nil {
		return nil, err
	}

	snapshot := page.selection.Snapshot()
	result := &CheckoutPage{
		Selection: snapshot,
		Summary:   Evaluate(snapshot, page.catalog, s.rules),
	}
	if page.selection.NonEmptyCount() == 0 {
		result.Advisories = []domain.Advisory{EmptyOrderAdvisory()}
	}
	return result, nil
}

func (s *CheckoutService) RemoveItem(ctx context.Context, session string, category domain.Category) (*SelectionChange, error) {
	page, err := s.open(ctx, session)
	if err != nil {
		return nil, err
	}

	previous, err := page.selection.Remove(ctx, category)
	if err != nil {
		return nil, err
	}

	change := page.change(s.rules)
	change.Category = category
	change.Previous = previous
	change.Advisories = []domain.Advisory{itemRemovedAdvisory()}
	return change, nil
}

// Submit creates the order and clears the selection only once the order
// store confirmed it. A failed create keeps the selection intact.
func (s *CheckoutService) Submit(ctx context.Context, session string, form domain.DeliveryForm) (*SubmitResult, error) {
	page, err := s.open(ctx, session)
	if err != nil {
		return nil, err
	}

	submission := s.adapter.BuildPayload(page.selection.Snapshot(), page.catalog, form)
	order, err := s.orders.CreateOrder(ctx, submission.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}
	log.Printf("[lunch-svc] session=%s order %s placed, total=%d full_combo=%t",
		session, order.ID, order.Total, submission.Combo.IsFullCombo)

	if err := page.selection.Clear(ctx); err != nil {
		log.Printf("[lunch-svc] session=%s %v", session, err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, orderEvent(order, submission)); err != nil {
			log.Printf("[lunch-svc] failed to publish order %s: %v", order.ID, err)
		}
	}

	return &SubmitResult{
		Order:     order,
		Summary:   submission.Combo,
		Advisory:  orderPlacedAdvisory(order),
		QRCodeURL: s.qrLink(order.ID),
	}, nil
}

func (s *CheckoutService) open(ctx context.Context, session string) (*pageState, error) {
	page := openPage(ctx, s.store, session)
	if page.catalog.Len() > 0 {
		return page, nil
	}

	records, err := s.source.ListDishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dishes: %w", err)
	}
	if err := page.catalog.Load(ctx, records); err != nil {
		log.Printf("[lunch-svc] session=%s %v", session, err)
	}
	return page, nil
}

func orderEvent(order *domain.Order, submission Submission) domain.OrderEvent {
	combo := submission.Combo
	keywords := make([]string, 0, len(combo.Items))
	for _, dish := range combo.Items {
		keywords = append(keywords, dish.Keyword)
	}
	return domain.OrderEvent{
		Type:        domain.EventOrderPlaced,
		OrderID:     order.ID,
		Keywords:    keywords,
		Total:       combo.Total,
		Discount:    combo.Discount,
		IsFullCombo: combo.IsFullCombo,
		Timestamp:   submission.PlacedAt,
	}
}
