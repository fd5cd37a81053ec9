package commands

import (
	"errors"
	"math"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrRateRiderCommandIsNotConstructed = errors.New(
	"RateRiderCommand must be created via NewRateRiderCommand constructor",
)

// RateRiderCommand replaces a rider's rating.
type RateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	rating  float64

	guard guard.ConstructorGuard
}

// NewRateRiderCommand accepts ratings from rider.MinRating to rider.MaxRating.
func NewRateRiderCommand(riderID kernel.UUID, rating float64) (RateRiderCommand, error) {
	var ratingErr error
	if math.IsNaN(rating) || rating < rider.MinRating || rating > rider.MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, rider.MinRating, rider.MaxRating)
	}
	if err := errors.Join(riderID.Validate(), ratingErr); err != nil {
		return RateRiderCommand{}, err
	}
	return RateRiderCommand{
		riderID: riderID,
		rating:  rating,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RateRiderCommand) Validate() error {
	return c.guard.Validate(ErrRateRiderCommandIsNotConstructed)
}

func (c RateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c RateRiderCommand) Rating() float64 {
	return c.rating
}
