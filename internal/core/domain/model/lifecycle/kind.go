package lifecycle

import (
	"fmt"
	"strings"
)

// Kind identifies which status machine a status value belongs to.
type Kind int

const (
	// KindUnknown is the zero value and never valid.
	KindUnknown Kind = iota
	KindOrder
	KindPurchaseOrder
	KindDelivery
	KindRider
	KindPayment
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindOrder:         "order",
		KindPurchaseOrder: "purchase-order",
		KindDelivery:      "delivery",
		KindRider:         "rider",
		KindPayment:       "payment",
	}
}

// String returns the kebab-case name, or "unknown".
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// HasTransitions reports whether entities of this kind move through a
// transition table. Rider and payment statuses are projected only.
func (k Kind) HasTransitions() bool {
	return k == KindOrder || k == KindPurchaseOrder || k == KindDelivery
}

// Validate returns ErrUnknownKind for values outside the enumeration.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return nil
}

// ParseKind accepts the singular kebab-case name and the plural collection
// name used in URLs ("purchase-orders", "deliveries").
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "orders":
		return KindOrder, nil
	case "purchase-orders":
		return KindPurchaseOrder, nil
	case "deliveries":
		return KindDelivery, nil
	case "riders":
		return KindRider, nil
	case "payments":
		return KindPayment, nil
	}
	for k, str := range getKindStrings() {
		if str == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
