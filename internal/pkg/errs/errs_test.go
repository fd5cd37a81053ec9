package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	storage := errors.New("relation deliveries does not exist")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  errs.NewObjectNotFoundError("delivery", "d-1"),
			want: "object not found: d-1",
		},
		{
			name: "not found with cause",
			err:  errs.NewObjectNotFoundErrorWithCause("delivery", "d-1", storage),
			want: "object not found: param is: delivery, ID is: d-1 (cause: relation deliveries does not exist)",
		},
		{
			name: "invalid",
			err:  errs.NewValueIsInvalidError("email"),
			want: "value is invalid: email",
		},
		{
			name: "invalid with cause",
			err:  errs.NewValueIsInvalidErrorWithCause("email", errors.New("missing @")),
			want: "value is invalid: email (cause: missing @)",
		},
		{
			name: "out of range",
			err:  errs.NewValueIsOutOfRangeError("rating", 7.5, 0.0, 5.0),
			want: "value is invalid: 7.5 is rating, min value is 0, max value is 5",
		},
		{
			name: "out of range with cause",
			err:  errs.NewValueIsOutOfRangeErrorWithCause("quantity", -1, 0, 12, errors.New("negative")),
			want: "value is invalid: -1 is quantity, min value is 0, max value is 12 (cause: negative)",
		},
		{
			name: "required",
			err:  errs.NewValueIsRequiredError("riderID"),
			want: "value is required: riderID",
		},
		{
			name: "required with cause",
			err:  errs.NewValueIsRequiredErrorWithCause("riderID", errors.New("delivery is assigned")),
			want: "value is required: riderID (cause: delivery is assigned)",
		},
		{
			name: "version with cause",
			err:  errs.NewVersionIsInvalidError("schema", errors.New("expected 2")),
			want: "version is invalid: schema (cause: expected 2)",
		},
		{
			name: "version without cause",
			err:  errs.NewVersionIsInvalidErrorWithCause("schema"),
			want: "version is invalid: schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorMessagesStayOnOneLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("vehicleNumber", "KA-01\r\nAB-1234", 0, 10)

	assert.Contains(t, err.Error(), "KA-01 AB-1234")
	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\r")
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{errs.NewObjectNotFoundError("order", "o-1"), errs.ErrObjectNotFound},
		{errs.NewObjectNotFoundErrorWithCause("order", "o-1", errors.New("db")), errs.ErrObjectNotFound},
		{errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid},
		{errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90), errs.ErrValueIsOutOfRange},
		{errs.NewValueIsRequiredError("number"), errs.ErrValueIsRequired},
		{errs.NewVersionIsInvalidErrorWithCause("schema"), errs.ErrVersionIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("create rider: %w", tt.err)

			require.ErrorIs(t, wrapped, tt.sentinel)
			for _, other := range []error{
				errs.ErrObjectNotFound,
				errs.ErrValueIsInvalid,
				errs.ErrValueIsOutOfRange,
				errs.ErrValueIsRequired,
				errs.ErrVersionIsInvalid,
			} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestErrorsAsThroughJoin(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsOutOfRangeError("rating", 6, 0, 5),
	)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "name", required.ParamName)

	var outOfRange *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 6, outOfRange.Value)
	assert.Equal(t, 5, outOfRange.Max)
}
