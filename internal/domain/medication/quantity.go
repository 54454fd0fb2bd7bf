package medication

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// QuantityType is the wire and storage discriminator of the stock variant.
type QuantityType string

const (
	QuantityTypePackage QuantityType = "package"
	QuantityTypeUnknown QuantityType = "unknown"
)

var ErrUnknownQuantityType = errors.New("unknown quantity type")

// Code returns the single-character storage code of the variant.
func (t QuantityType) Code() string {
	if t == QuantityTypePackage {
		return "p"
	}
	return "u"
}

// QuantityTypeFromCode parses the storage code back into the discriminator.
func QuantityTypeFromCode(code string) (QuantityType, error) {
	switch code {
	case "p":
		return QuantityTypePackage, nil
	case "u":
		return QuantityTypeUnknown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQuantityType, code)
	}
}

// Quantity is a closed tagged union over the stock variants. A stock entry is
// either a counted package with an exact price, or untracked (compounded or
// prescription-only items). Consumers must switch exhaustively on the
// concrete type.
type Quantity interface {
	Type() QuantityType
	isQuantity()
}

// Package is counted stock: a non-negative amount and a fixed-point price.
type Package struct {
	Amount uint64
	Price  decimal.Decimal
}

// Unknown is untracked stock; amount and price are not recorded.
type Unknown struct{}

func (Package) Type() QuantityType { return QuantityTypePackage }
func (Unknown) Type() QuantityType { return QuantityTypeUnknown }

func (Package) isQuantity() {}
func (Unknown) isQuantity() {}

type quantityWire struct {
	Type     QuantityType     `json:"type"`
	Quantity *uint64          `json:"quantity,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// MarshalQuantity serializes a Quantity into its tagged wire shape.
func MarshalQuantity(q Quantity) ([]byte, error) {
	switch v := q.(type) {
	case Package:
		amount := v.Amount
		price := v.Price
		return json.Marshal(quantityWire{Type: QuantityTypePackage, Quantity: &amount, Price: &price})
	case Unknown:
		return json.Marshal(quantityWire{Type: QuantityTypeUnknown})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownQuantityType, q)
	}
}

// UnmarshalQuantity parses the tagged wire shape back into a Quantity.
func UnmarshalQuantity(data []byte) (Quantity, error) {
	var wire quantityWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	switch wire.Type {
	case QuantityTypePackage:
		pkg := Package{}
		if wire.Quantity != nil {
			pkg.Amount = *wire.Quantity
		}
		if wire.Price != nil {
			pkg.Price = *wire.Price
		}
		return pkg, nil
	case QuantityTypeUnknown:
		return Unknown{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuantityType, wire.Type)
	}
}
