package order

import (
	"fmt"

	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
)

// PaymentStatus records how much of an order has been paid. It is
// informational: no payment is processed here.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPartial
	PaymentPaid
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is rendered by String's fallback
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPartial:  "partial",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

func getPaymentStatusDisplays() map[PaymentStatus]lifecycle.Display {
	//nolint:exhaustive // PaymentUnknown has no projection
	return map[PaymentStatus]lifecycle.Display{
		PaymentPending:  {Label: "Pending", Tier: lifecycle.TierWarning, Progress: 0},
		PaymentPartial:  {Label: "Partial", Tier: lifecycle.TierInfo, Progress: 50},
		PaymentPaid:     {Label: "Paid", Tier: lifecycle.TierSuccess, Progress: 100},
		PaymentRefunded: {Label: "Refunded", Tier: lifecycle.TierNeutral, Progress: 0},
	}
}

// ParsePaymentStatus converts the lower-case name into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, lifecycle.NewUnknownStatusError(lifecycle.KindPayment, s)
}

func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects PaymentUnknown and values outside the enumeration.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// Display returns the badge projection of the payment status.
func (p PaymentStatus) Display() (lifecycle.Display, error) {
	d, ok := getPaymentStatusDisplays()[p]
	if !ok {
		return lifecycle.Display{}, lifecycle.NewUnknownStatusError(lifecycle.KindPayment, p.String())
	}
	return d, nil
}
