package commands

import (
	"context"
	"time"
)

// FinalizeByTrackingCodeCommandHandler bypasses the transition table and
// closes every non-terminal shipment with the given tracking code, still
// appending a history entry for each. Shipments that are already terminal are
// left untouched. Handle returns how many shipments were updated, which is
// zero when the code is unknown.
type FinalizeByTrackingCodeCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

func NewFinalizeByTrackingCodeCommandHandler(uowFactory ShipmentUoWFactory) FinalizeByTrackingCodeCommandHandler {
	return FinalizeByTrackingCodeCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h FinalizeByTrackingCodeCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeByTrackingCodeCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	matches, err := repo.GetAllByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return 0, err
	}

	now := h.now()
	updated := 0
	for _, s := range matches {
		changed, finalizeErr := s.Finalize(cmd.Terminal(), cmd.Actor(), now)
		if finalizeErr != nil {
			return 0, finalizeErr
		}
		if !changed {
			continue
		}

		if err = repo.Update(ctx, s); err != nil {
			return 0, err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
