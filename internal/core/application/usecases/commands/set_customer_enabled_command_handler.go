package commands

import (
	"context"
)

// SetCustomerEnabledCommandHandler toggles the account flag. Unknown ids fail
// with errs.ObjectNotFoundError; setting the current value is a no-op that
// still succeeds.
type SetCustomerEnabledCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewSetCustomerEnabledCommandHandler(uowFactory CustomerUoWFactory) SetCustomerEnabledCommandHandler {
	return SetCustomerEnabledCommandHandler{uowFactory: uowFactory}
}

func (h SetCustomerEnabledCommandHandler) Handle(ctx context.Context, cmd SetCustomerEnabledCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	account, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if !account.SetEnabled(cmd.Enabled()) {
		return nil
	}

	if err = repo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
