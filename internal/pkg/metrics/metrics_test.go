package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_PublishCountsTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	id := kernel.NewUUID()
	err = recorder.Publish(context.Background(),
		lifecycle.StatusChanged{Kind: lifecycle.KindDelivery, ID: id, From: "pending", To: "assigned"},
		lifecycle.StatusChanged{Kind: lifecycle.KindDelivery, ID: kernel.NewUUID(), From: "pending", To: "assigned"},
		lifecycle.StatusChanged{Kind: lifecycle.KindOrder, ID: kernel.NewUUID(), From: "pending", To: "cancelled"},
	)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "backoffice_status_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecorder_Reject(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	recorder.Reject(lifecycle.KindDelivery, lifecycle.ErrMissingRiderAssignment)
	recorder.Reject(lifecycle.KindDelivery, errors.New("database is down"))

	count, err := testutil.GatherAndCount(reg, "backoffice_status_transitions_rejected_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_DuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	require.Error(t, err)
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid transition", lifecycle.NewInvalidTransitionError(lifecycle.KindOrder, order.Delivered, order.Pending), metrics.ReasonInvalidTransition},
		{"missing rider", fmt.Errorf("assign: %w", lifecycle.ErrMissingRiderAssignment), metrics.ReasonMissingRider},
		{"quantity", lifecycle.ErrReceivedQuantityExceedsOrdered, metrics.ReasonQuantityExceeded},
		{"rider unavailable", lifecycle.ErrRiderUnavailable, metrics.ReasonRiderUnavailable},
		{"other", errors.New("boom"), metrics.ReasonOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.RejectionReason(tt.err))
		})
	}
}
