package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrDispatchPendingDeliveryCommandIsNotConstructed = errors.New(
	"DispatchPendingDeliveryCommand must be created via NewDispatchPendingDeliveryCommand constructor",
)

// DispatchPendingDeliveryCommand assigns the oldest pending delivery to the best available rider.
// It carries no data and is issued by the dispatch job.
//
// Example:
//
//	cmd := NewDispatchPendingDeliveryCommand()
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingDelivery) {
//	    // nothing to do this round
//	}
type DispatchPendingDeliveryCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchPendingDeliveryCommand() DispatchPendingDeliveryCommand {
	return DispatchPendingDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *DispatchPendingDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingDeliveryCommandIsNotConstructed)
}
