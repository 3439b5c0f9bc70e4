package domain

import (
	"errors"
	"time"
)

var (
	ErrDuplicateEvent = errors.New("order already processed")
	ErrInvalidPeriod  = errors.New("invalid period")
)

const EventOrderPlaced = "order_placed"

// OrderEvent mirrors what lunch-svc publishes on the orders topic.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	Keywords    []string  `json:"keywords"`
	Total       int       `json:"total"`
	Discount    int       `json:"discount"`
	IsFullCombo bool      `json:"is_full_combo"`
	Timestamp   time.Time `json:"timestamp"`
}

const (
	PeriodAll   = "all"
	PeriodToday = "today"
)

type DishPopularity struct {
	Keyword string `json:"keyword"`
	Orders  int    `json:"orders"`
}

type Summary struct {
	Orders     int `json:"orders"`
	FullCombos int `json:"full_combos"`
	Revenue    int `json:"revenue"`
	Discounts  int `json:"discounts"`
}
