package commands

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler is the only operation that mutates an order after
// creation. It overwrites the status column and nothing else.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     order.TransitionPolicy
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, policy order.TransitionPolicy) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle fails with errs.ObjectNotFoundError for unknown orders, then with
// errs.ValueIsNotAllowedError for values outside the status enumeration, then with
// order.ErrTransitionNotAllowed when the policy rejects the move.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (readmodel.Order, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.Order{}, err
	}

	id, err := kernel.NewID(cmd.OrderID())
	if err != nil {
		return readmodel.Order{}, errs.NewObjectNotFoundErrorWithCause("order", cmd.OrderID(), err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return readmodel.Order{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	current, err := orders.Get(ctx, id)
	if err != nil {
		return readmodel.Order{}, err
	}

	next, err := order.ParseStatus(cmd.Status())
	if err != nil {
		return readmodel.Order{}, err
	}

	if err = current.ChangeStatus(next, h.policy); err != nil {
		return readmodel.Order{}, err
	}

	updated, err := orders.UpdateStatus(ctx, current.ID(), current.Status())
	if err != nil {
		return readmodel.Order{}, err
	}

	view, err := resolveOrder(ctx, uow, updated)
	if err != nil {
		return readmodel.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return readmodel.Order{}, err
	}

	return view, nil
}
