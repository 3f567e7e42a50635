// Package warehouse models stock keeping for the fulfilment side. Its types
// reference each other in cycles, and Shipment gathers field types the
// generator must refuse.
package warehouse

// Address represents a physical or billing/shipping address.
type Address struct {
	ID         uint        `json:"id"`
	Street     string      `json:"street"`
	City       string      `json:"city"`
	PostalCode string      `json:"postal_code"`
	Country    string      `json:"country"`
	IsDefault  bool        `json:"is_default"`
	Geo        Coordinates `json:"geo"`
}

// Coordinates is only reachable through Address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Customer represents a store customer/user.
type Customer struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // omitted in JSON

	DefaultBillingAddressID *uint `json:"default_billing_address_id,omitempty"`

	// Relationships
	Addresses []Address `json:"addresses,omitempty"`
	Orders    []Order   `json:"orders,omitempty"`
}

// Product represents a sellable item in the warehouse.
type Product struct {
	ID       uint      `json:"id"`
	SKU      string    `json:"sku"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"` // in cents (minor currency unit)
	Stock    int       `json:"stock"`
	Weight   float64   `json:"weight"` // in grams, useful for shipping
	Category *Category `json:"category,omitempty"`

	OrderItems []OrderItem `json:"-"`
}

// Category is a node of the product taxonomy.
type Category struct {
	Name     string     `json:"name"`
	Parent   *Category  `json:"parent,omitempty"`
	Children []Category `json:"children,omitempty"`
}

// Order represents a customer's purchase.
type Order struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"` // e.g. "pending", "paid", "shipped", "cancelled"
	TotalAmount int64  `json:"total_amount"`

	// Embedded addresses for snapshot (common denormalization practice)
	ShippingAddress Address  `json:"shipping_address"`
	BillingAddress  *Address `json:"billing_address,omitempty"`

	// Relationships
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`
}

// OrderItem is a line item within an order.
type OrderItem struct {
	ID        uint  `json:"id"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`

	// Relationships
	Order   *Order  `json:"order,omitempty"`
	Product Product `json:"product"`
}
