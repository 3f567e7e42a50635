package store

// Tally is the smallest bean: a counter and its labels.
type Tally struct {
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

// AccountState is the lifecycle state of an account.
type AccountState string

const (
	StateActive  AccountState = "ACTIVE"
	StatePending AccountState = "PENDING"
	StateClosed  AccountState = "CLOSED"
)

// StateCounts counts accounts per state.
type StateCounts struct {
	Counts map[AccountState]int `json:"counts"`
}

// Checkout pairs a payment with the order it settles.
type Checkout struct {
	OrderID int64         `json:"order_id"`
	Payment PaymentMethod `json:"payment"`
}

// Shelf holds containers that may be null at any depth, and pointers to
// containers.
type Shelf struct {
	Bins   map[string][]OrderItem `json:"bins"`
	Rows   [][]OrderItem          `json:"rows"`
	Grid   [][]int                `json:"grid"`
	Ranks  []*Priority            `json:"ranks"`
	Slots  *[2]string             `json:"slots"`
	Labels *[]string              `json:"labels"`
	Stock  *map[SKU]int           `json:"stock"`
	Queue  *[]OrderItem           `json:"queue"`
	Shifts map[string]*[]int      `json:"shifts"`
}
