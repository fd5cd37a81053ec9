package purchase_test

import (
	"testing"

	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range purchase.Statuses() {
		parsed, err := purchase.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := purchase.ParseStatus("approved")
	require.ErrorIs(t, err, lifecycle.ErrUnknownStatus)
	require.ErrorIs(t, purchase.Unknown.Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Table(t *testing.T) {
	edges := map[[2]purchase.Status]bool{
		{purchase.Draft, purchase.Sent}:         true,
		{purchase.Draft, purchase.Cancelled}:    true,
		{purchase.Sent, purchase.Confirmed}:     true,
		{purchase.Sent, purchase.Cancelled}:     true,
		{purchase.Confirmed, purchase.Received}: true,
		{purchase.Confirmed, purchase.Partial}:  true,
		{purchase.Partial, purchase.Received}:   true,
	}

	for _, from := range purchase.Statuses() {
		for _, to := range purchase.Statuses() {
			assert.Equal(t, edges[[2]purchase.Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	for _, s := range []purchase.Status{purchase.Received, purchase.Cancelled} {
		assert.True(t, s.IsTerminal(), s.String())
	}
	for _, s := range []purchase.Status{purchase.Draft, purchase.Sent, purchase.Confirmed, purchase.Partial} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status purchase.Status
		want   lifecycle.Display
	}{
		{purchase.Draft, lifecycle.Display{Label: "Draft", Tier: lifecycle.TierNeutral, Progress: 0}},
		{purchase.Sent, lifecycle.Display{Label: "Sent", Tier: lifecycle.TierInfo, Progress: 25}},
		{purchase.Confirmed, lifecycle.Display{Label: "Confirmed", Tier: lifecycle.TierInfo, Progress: 50}},
		{purchase.Partial, lifecycle.Display{Label: "Partially Received", Tier: lifecycle.TierWarning, Progress: 75}},
		{purchase.Received, lifecycle.Display{Label: "Received", Tier: lifecycle.TierSuccess, Progress: 100}},
		{purchase.Cancelled, lifecycle.Display{Label: "Cancelled", Tier: lifecycle.TierDanger, Progress: 0}},
	}
	for _, tt := range tests {
		got, err := tt.status.Display()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.status.String())
	}

	_, err := purchase.Status(42).Display()
	require.ErrorIs(t, err, lifecycle.ErrUnknownStatus)
}
