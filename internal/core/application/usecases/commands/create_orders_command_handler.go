package commands

import (
	"context"

	"orders/internal/core/application/readmodel"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"
)

// CreateOrdersCommandHandler places a batch of orders in one transaction.
//
// Checks run before any write, in this order: every product reference (the first
// unknown ID fails the batch with errs.ReferenceNotFoundError), then every requested
// status against the transition policy. Only then is the customer resolved or
// created and the orders inserted.
//
// Example:
//
//	handler := NewCreateOrdersCommandHandler(uowFactory, order.Permissive)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrReferenceNotFound) {
//	    // nothing was written
//	}
type CreateOrdersCommandHandler struct {
	uowFactory UoWFactory
	policy     order.TransitionPolicy
	rules      services.ValidationRules
	resolver   services.CustomerResolver
}

func NewCreateOrdersCommandHandler(uowFactory UoWFactory, policy order.TransitionPolicy) CreateOrdersCommandHandler {
	return CreateOrdersCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		rules:      services.NewValidationRules(),
		resolver:   services.NewCustomerResolver(),
	}
}

// Handle returns the created orders, resolved, in the order of cmd.Items().
func (h CreateOrdersCommandHandler) Handle(ctx context.Context, cmd CreateOrdersCommand) ([]readmodel.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := h.requireProducts(ctx, uow, cmd.Items())
	if err != nil {
		return nil, err
	}

	statuses := make([]order.Status, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		status, parseErr := order.ParseStatus(item.Status())
		if parseErr != nil {
			return nil, parseErr
		}
		if checkErr := h.policy.Check(order.Pending, status); checkErr != nil {
			return nil, checkErr
		}
		statuses = append(statuses, status)
	}

	var owner *customer.Customer
	if cmd.CustomerName() != "" {
		owner, _, err = h.resolver.Resolve(ctx, uow.CustomerRepository(), cmd.CustomerName())
		if err != nil {
			return nil, err
		}
	}

	var ownerID *kernel.ID
	if owner != nil {
		id := owner.ID()
		ownerID = &id
	}

	drafts := make([]*order.Order, 0, len(cmd.Items()))
	for i, item := range cmd.Items() {
		draft, draftErr := order.NewOrder(products[item.ProductID()].ID(), ownerID, item.Quantity())
		if draftErr != nil {
			return nil, draftErr
		}
		if changeErr := draft.ChangeStatus(statuses[i], h.policy); changeErr != nil {
			return nil, changeErr
		}
		drafts = append(drafts, draft)
	}

	saved, err := uow.OrderRepository().AddAll(ctx, drafts)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	created := make([]readmodel.Order, 0, len(saved))
	for _, o := range saved {
		view, viewErr := readmodel.NewOrder(o, products[o.ProductID().Int64()], owner)
		if viewErr != nil {
			return nil, viewErr
		}
		created = append(created, view)
	}

	return created, nil
}

// requireProducts loads every distinct product referenced by items, failing on the
// first unknown ID in item order.
func (h CreateOrdersCommandHandler) requireProducts(
	ctx context.Context,
	uow UoW,
	items []OrderItem,
) (map[int64]*product.Product, error) {
	repo := uow.ProductRepository()
	products := make(map[int64]*product.Product, len(items))

	for _, item := range items {
		if _, ok := products[item.ProductID()]; ok {
			continue
		}

		id, err := kernel.NewID(item.ProductID())
		if err != nil {
			return nil, errs.NewReferenceNotFoundErrorWithCause("product_id", item.ProductID(), err)
		}

		p, err := h.rules.RequireProduct(ctx, repo, id)
		if err != nil {
			return nil, err
		}
		products[item.ProductID()] = p
	}

	return products, nil
}
