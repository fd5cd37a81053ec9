package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrChangeStatusCommandIsNotConstructed = errors.New(
		"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
	)
	ErrTargetStatusIsRequired = errs.NewValueIsRequiredError("status")
)

// ChangeStatusCommand requests a status transition of an order, purchase order or delivery.
// The target is the raw status name; parsing and the transition rules are left to the domain.
//
// Example:
//
//	cmd, err := NewChangeStatusCommand(lifecycle.KindOrder, orderID, "processing")
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, lifecycle.ErrInvalidTransition) {
//	    // the order is left as it was
//	}
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	kind   lifecycle.Kind
	id     kernel.UUID
	target string

	guard guard.ConstructorGuard
}

func NewChangeStatusCommand(kind lifecycle.Kind, id kernel.UUID, target string) (ChangeStatusCommand, error) {
	var problems []error
	if err := kind.Validate(); err != nil {
		problems = append(problems, err)
	} else if !kind.HasTransitions() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("kind", lifecycle.ErrUnknownKind))
	}
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	target = strings.TrimSpace(target)
	if target == "" {
		problems = append(problems, ErrTargetStatusIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return ChangeStatusCommand{}, err
	}

	return ChangeStatusCommand{
		kind:   kind,
		id:     id,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

func (c ChangeStatusCommand) Kind() lifecycle.Kind {
	return c.kind
}

func (c ChangeStatusCommand) ID() kernel.UUID {
	return c.id
}

func (c ChangeStatusCommand) Target() string {
	return c.target
}
