package entity

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ShippingAddress is the structured form of the serialized address stored on
// an order. The store keeps the raw JSON string; parsing happens once, on
// single-order reads.
type ShippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone,omitempty"`
}

// ErrMalformedAddress is returned when a stored address is not valid JSON.
var ErrMalformedAddress = errors.New("stored shipping address is not valid JSON")

// ParseShippingAddress decodes the stored JSON address. A malformed value is
// a data problem, not a panic: callers get ErrMalformedAddress wrapped with
// the decode failure.
func ParseShippingAddress(raw string) (*ShippingAddress, error) {
	var addr ShippingAddress
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, err.Error())
	}

	return &addr, nil
}

// Serialize encodes the address for storage on an order.
func (a *ShippingAddress) Serialize() (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize shipping address")
	}

	return string(data), nil
}
