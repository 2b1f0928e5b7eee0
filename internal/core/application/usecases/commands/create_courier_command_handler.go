package commands

import (
	"context"
	"fmt"

	"parcel/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler adds a courier to the assignment pool. New
// couriers start available, so the next registration or assignment run can
// pick them.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{uowFactory: uowFactory}
}

func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	agent, err := courier.NewCourier(cmd.CourierID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, agent); err != nil {
		return fmt.Errorf("add courier %s: %w", cmd.CourierID(), err)
	}

	return uow.Commit(ctx)
}
