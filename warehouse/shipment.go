package warehouse

import (
	"database/sql"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Shipment is what the carrier integration stores. None of its fields can be
// parsed from a plain JSON tree, which makes it the reference for rejection.
type Shipment struct {
	TrackingID uuid.UUID         `json:"tracking_id"`
	ShippedAt  time.Time         `json:"shipped_at"`
	Weight     *big.Float        `json:"weight"`
	Legs       []time.Duration   `json:"legs"`
	Carrier    sql.NullString    `json:"carrier"`
	ByCode     map[int]string    `json:"by_code"`
	Label      Box[string]       `json:"label"`
	Updates    chan Order        `json:"-"`
	Events     map[string]func() `json:"events"`
	Reference  string            `json:"reference"`
}

// Box wraps a single value of any type.
type Box[T any] struct {
	Value T `json:"value"`
}
