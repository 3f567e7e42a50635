package store

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// PaymentMethod is how an order was paid. The concrete type travels in the
// "_type" field of its JSON object.
//
//treeparse:discriminator _type
//treeparse:subtype TypeA Card
//treeparse:subtype TypeB Transfer
type PaymentMethod interface {
	paymentMethod()
}

// PaymentBase carries the fields every payment method shares.
type PaymentBase struct {
	Amount   Cents  `json:"amount"`
	Currency string `json:"currency"`
}

// Card is a card payment.
type Card struct {
	PaymentBase

	Last4 string    `json:"last4"`
	Brand CardBrand `json:"brand"`
}

// Transfer is a bank transfer.
type Transfer struct {
	PaymentBase

	IBAN      string  `json:"iban"`
	Reference *string `json:"reference,omitempty"`
}

func (Card) paymentMethod()     {}
func (Transfer) paymentMethod() {}

func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	return json.Marshal(struct {
		Type string `json:"_type"`
		plain
	}{Type: "TypeA", plain: plain(c)})
}

func (t Transfer) MarshalJSON() ([]byte, error) {
	type plain Transfer
	return json.Marshal(struct {
		Type string `json:"_type"`
		plain
	}{Type: "TypeB", plain: plain(t)})
}

// CardBrand is a card network. It is written in lower case and parsed case
// insensitively through UnmarshalText.
type CardBrand int

const (
	BrandUnknown CardBrand = iota
	BrandVisa
	BrandMastercard
)

var brandNames = map[CardBrand]string{
	BrandUnknown:    "unknown",
	BrandVisa:       "visa",
	BrandMastercard: "mastercard",
}

func (b CardBrand) MarshalText() ([]byte, error) {
	name, ok := brandNames[b]
	if !ok {
		return nil, errors.Newf("invalid card brand %d", int(b))
	}

	return []byte(name), nil
}

func (b *CardBrand) UnmarshalText(text []byte) error {
	for brand, name := range brandNames {
		if strings.EqualFold(name, string(text)) {
			*b = brand
			return nil
		}
	}

	return errors.Newf("unknown card brand %q", text)
}
