package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"lunchtime/lunch-svc/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogStore indexes dishes by keyword and mirrors the index into the
// catalog slot so another page can resolve keywords without a fetch.
type CatalogStore struct {
	store  StateStore
	key    string
	dishes map[string]domain.Dish
}

func NewCatalogStore(store StateStore, key string) *CatalogStore {
	return &CatalogStore{store: store, key: key, dishes: map[string]domain.Dish{}}
}

// Load replaces the index with the usable records and persists it. Records
// without a known category or keyword, or with a non-positive numeric price,
// are dropped.
func (c *CatalogStore) Load(ctx context.Context, records []domain.RawDish) error {
	dishes := make(map[string]domain.Dish, len(records))
	for _, rec := range records {
		dish, ok := normalizeDish(rec)
		if !ok {
			continue
		}
		dishes[dish.Keyword] = dish
	}
	c.dishes = dishes

	payload, err := json.Marshal(c.dishes)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := c.store.Set(ctx, c.key, string(payload)); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}

// Restore loads the cached index. A missing or unreadable cache leaves the
// index empty and reports false.
func (c *CatalogStore) Restore(ctx context.Context) (bool, error) {
	c.dishes = map[string]domain.Dish{}

	value, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return false, fmt.Errorf("failed to read catalog cache: %w", err)
	}
	if !found {
		return false, nil
	}

	var cached map[string]domain.Dish
	if err := json.Unmarshal([]byte(value), &cached); err != nil {
		return false, nil
	}
	for kw, dish := range cached {
		if kw == "" || !dish.Category.Valid() {
			continue
		}
		c.dishes[kw] = dish
	}
	return len(c.dishes) > 0, nil
}

func (c *CatalogStore) Get(keyword string) (domain.Dish, bool) {
	dish, ok := c.dishes[keyword]
	return dish, ok
}

func (c *CatalogStore) Len() int {
	return len(c.dishes)
}

// ByCategory groups the index by category, each group ordered by name.
func (c *CatalogStore) ByCategory() map[domain.Category][]domain.Dish {
	collator := collate.New(language.Russian)
	grouped := make(map[domain.Category][]domain.Dish)
	for _, dish := range c.dishes {
		grouped[dish.Category] = append(grouped[dish.Category], dish)
	}
	for _, dishes := range grouped {
		sort.Slice(dishes, func(i, j int) bool {
			if cmp := collator.CompareString(dishes[i].Name, dishes[j].Name); cmp != 0 {
				return cmp < 0
			}
			return dishes[i].Keyword < dishes[j].Keyword
		})
	}
	return grouped
}

func normalizeDish(rec domain.RawDish) (domain.Dish, bool) {
	category := domain.Category(rec.Category)
	if rec.Keyword == "" || !category.Valid() {
		return domain.Dish{}, false
	}

	price, numeric := parsePrice(rec.Price)
	if numeric && price <= 0 {
		return domain.Dish{}, false
	}
	if price < 0 {
		price = 0
	}

	return domain.Dish{
		Keyword:  rec.Keyword,
		Name:     rec.Name,
		Category: category,
		Kind:     domain.Kind(rec.Kind),
		Price:    price,
		Image:    rec.Image,
		Count:    rec.Count,
	}, true
}

// maxPrice bounds a usable price. Anything larger is treated as invalid.
const maxPrice = math.MaxInt32

// parsePrice reads the leading integer of a number or string. numeric is
// false when no digits lead the value, in which case the price is 0. A
// numeric value out of range parses to 0 so the record is dropped.
func parsePrice(raw json.RawMessage) (price int, numeric bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		if math.IsNaN(number) || math.IsInf(number, 0) {
			return 0, false
		}
		if math.Abs(number) > maxPrice {
			return 0, true
		}
		return int(math.Trunc(number)), true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}
	return leadingInt(text)
}

func leadingInt(text string) (int, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil || n > maxPrice || n < -maxPrice {
		return 0, true
	}
	return n, true
}
