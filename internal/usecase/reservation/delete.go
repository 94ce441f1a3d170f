package reservation

import (
	"context"
	"errors"

	"github.com/tallermotors/autoservice-api/internal/audit"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
)

// DeleteReservation removes a reservation directly; unlike client deletion
// there is no guard.
type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	id string,
) error {

	resID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteReservation(ctx, resID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound()
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &resID,
	})

	return nil
}
