package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrNetworkFailure = errors.New("network failure")
	ErrDishNotFound   = errors.New("dish not found")
	ErrOrderNotFound  = errors.New("order not found")
)

type Category string

const (
	CategorySoup    Category = "soup"
	CategoryMain    Category = "main"
	CategorySalad   Category = "salad"
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
)

// AllCategories is the fixed category order used for listing and pricing.
var AllCategories = []Category{CategorySoup, CategoryMain, CategorySalad, CategoryDrink, CategoryDessert}

func (c Category) Valid() bool {
	switch c {
	case CategorySoup, CategoryMain, CategorySalad, CategoryDrink, CategoryDessert:
		return true
	}
	return false
}

type Kind string

const (
	KindVeg    Kind = "veg"
	KindNonVeg Kind = "non-veg"
)

type Dish struct {
	Keyword  string   `json:"keyword"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Kind     Kind     `json:"kind,omitempty"`
	Price    int      `json:"price"`
	Image    string   `json:"image,omitempty"`
	Count    string   `json:"count,omitempty"`
}

// RawDish is a catalog record as served by the mock backend. Price is kept
// raw because the feed sends numbers, numeric strings and garbage alike.
type RawDish struct {
	Keyword  string          `json:"keyword"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Kind     string          `json:"kind"`
	Price    json.RawMessage `json:"price"`
	Image    string          `json:"image"`
	Count    string          `json:"count"`
}

type ComboRules struct {
	Discount int
	Required []Category
	Auto     []Category
}

var DefaultComboRules = ComboRules{
	Discount: 50,
	Required: []Category{CategorySoup, CategoryMain, CategorySalad},
	Auto:     []Category{CategorySoup, CategoryMain, CategorySalad, CategoryDrink},
}

func (r ComboRules) IsRequired(c Category) bool {
	for _, req := range r.Required {
		if req == c {
			return true
		}
	}
	return false
}

type ComboResult struct {
	Items           []Dish     `json:"items"`
	RequiredFilled  []Category `json:"required_filled"`
	IsFullCombo     bool       `json:"is_full_combo"`
	HasKindConflict bool       `json:"has_kind_conflict"`
	Subtotal        int        `json:"subtotal"`
	Discount        int        `json:"discount"`
	Total           int        `json:"total"`
}

type AutoComboOutcome string

const (
	OutcomeFullCombo AutoComboOutcome = "full_combo"
	OutcomePartial   AutoComboOutcome = "partial"
	OutcomeFailed    AutoComboOutcome = "failed"
)

const (
	DeliveryASAP     = "asap"
	DeliverySpecific = "specific"
)

type DeliveryForm struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Address      string `json:"delivery_address"`
	DeliveryType string `json:"delivery_type"`
	DeliveryTime string `json:"delivery_time"`
}

type OrderPayload struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryTime    string `json:"deliveryTime"`
	Total           int    `json:"total"`
	Date            string `json:"date"`
}

type Order struct {
	ID string `json:"id"`
	OrderPayload
}

// CreatedAt parses the order date; unparsable dates sort as the zero time.
func (o Order) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339Nano, o.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

type Advisory struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	Keywords    []string  `json:"keywords"`
	Total       int       `json:"total"`
	Discount    int       `json:"discount"`
	IsFullCombo bool      `json:"is_full_combo"`
	Timestamp   time.Time `json:"timestamp"`
}

const EventOrderPlaced = "order_placed"
