// Package store holds the bean types of a small online shop. They are the
// fixtures the generator is tested against.
package store

import (
	"net/netip"
)

// Product represents an individual item available for sale.
// PriceCents holds the lowest currency unit to avoid floating-point errors.
type Product struct {
	ID          int64      `json:"id"`
	SKU         SKU        `json:"sku"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	PriceCents  Cents      `json:"price_cents"`
	Inventory   int        `json:"inventory_count"`
	Tags        []string   `json:"tags"`
	Dimensions  [3]float64 `json:"dimensions"`
	Thumbnail   []byte     `json:"thumbnail,omitempty"`
}

// SKU is a stock keeping unit. It has no declared constants, so it is a plain
// string-kinded type rather than an enum.
type SKU string

// Cents is an amount in the lowest currency unit.
type Cents int64

// Customer represents the user placing orders.
type Customer struct {
	ID       int64      `json:"id"`
	Email    string     `json:"email"`
	FullName string     `json:"full_name"`
	Address  *Address   `json:"address"`
	IsActive bool       `json:"is_active"`
	LastIP   netip.Addr `json:"last_ip"`
	Orders   []*Order   `json:"orders,omitempty"`

	passwordHash string
}

// Address is a postal address with an optional map position.
type Address struct {
	Street   string    `json:"street"`
	City     string    `json:"city"`
	Location *GeoPoint `json:"location,omitempty"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Audit is embedded by records that track their revision.
type Audit struct {
	Revision int    `json:"revision"`
	Author   string `json:"author,omitempty"`
}

// Order represents a transaction made by a customer.
type Order struct {
	Audit

	ID       int64         `json:"id"`
	Status   OrderStatus   `json:"status"`
	Priority *Priority     `json:"priority,omitempty"`
	Customer *Customer     `json:"customer,omitempty"`
	Items    []OrderItem   `json:"items"`
	Payment  PaymentMethod `json:"payment,omitempty"`

	Counters map[OrderStatus]int    `json:"counters,omitempty"`
	ByTag    map[string][]OrderItem `json:"by_tag,omitempty"`
	Labels   map[SKU]string         `json:"labels,omitempty"`
	Sales    map[Region]Cents       `json:"sales,omitempty"`
	Flags    Flags                  `json:"flags,omitempty"`
	Statuses []OrderStatus          `json:"statuses,omitempty"`
	Notes    []*string              `json:"notes,omitempty"`
	Matrix   [][]int                `json:"matrix,omitempty"`
	Window   [2]OrderItem           `json:"window"`
	Extra    map[string]any         `json:"extra,omitempty"`

	Meta struct {
		Source  string  `json:"source"`
		Channel *string `json:"channel,omitempty"`
	} `json:"meta"`

	Internal string `json:"-"`
	note     string
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64    `json:"product_id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice Cents    `json:"unit_price"`
	Product   *Product `json:"product,omitempty"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Priority orders fulfilment queues.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)
