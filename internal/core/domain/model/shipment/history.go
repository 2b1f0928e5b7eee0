package shipment

import (
	"errors"
	"strings"
	"time"

	"parcel/internal/pkg/errs"
)

var ErrActorIsRequired = errs.NewValueIsRequiredError("actor")

// HistoryEntry records one status change: which status, when, and who made it.
type HistoryEntry struct {
	status Status
	at     time.Time
	actor  string
}

func NewHistoryEntry(status Status, at time.Time, actor string) (HistoryEntry, error) {
	actor = strings.TrimSpace(actor)

	if err := errors.Join(
		status.Validate(),
		checkActor(actor),
		checkTimestamp(at),
	); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{status: status, at: at.UTC(), actor: actor}, nil
}

func (h HistoryEntry) Status() Status {
	return h.status
}

func (h HistoryEntry) At() time.Time {
	return h.at
}

func (h HistoryEntry) Actor() string {
	return h.actor
}

func checkActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	return nil
}

func checkTimestamp(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}
