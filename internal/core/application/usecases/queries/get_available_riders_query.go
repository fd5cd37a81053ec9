package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
		"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
	)
)

// GetAvailableRidersQuery lists riders that can take a delivery right now.
type GetAvailableRidersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableRidersQuery() GetAvailableRidersQuery {
	return GetAvailableRidersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// GetAvailableRidersQueryResponse is an available rider. Location is nil
// until the rider has reported a position.
type GetAvailableRidersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	VehicleType     string
	Rating          float64
	TotalDeliveries int
	Location        *kernel.GeoLocation
}
