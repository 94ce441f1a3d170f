package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/tallermotors/autoservice-api/internal/audit"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/integrity"
	"github.com/tallermotors/autoservice-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateReservationInput is a partial patch: nil means "leave unchanged".
// The client reference and the future-date rule are re-verified only when
// the corresponding field is present.
type UpdateReservationInput struct {
	ClientID      *string
	Vehicle       *string
	ServiceType   *string
	Status        *string
	ScheduledDate *time.Time
	Notes         *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateReservation struct {
	repo      domain.Repository
	integrity *integrity.Engine
	audit     *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	engine *integrity.Engine,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:      repo,
		integrity: engine,
		audit:     audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id string,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	resID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservationByID(ctx, resID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errNotFound()
		}
		return nil, err
	}

	if in.ClientID != nil {
		clientID, err := uc.integrity.EnsureClientExists(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		res.ClientID = clientID
	}

	if in.ScheduledDate != nil {
		if err := uc.integrity.EnsureFutureDate(*in.ScheduledDate); err != nil {
			return nil, err
		}
		res.ScheduledDate = *in.ScheduledDate
	}

	if in.Vehicle != nil {
		res.Vehicle = *in.Vehicle
	}
	if in.ServiceType != nil {
		res.ServiceType = *in.ServiceType
	}
	if in.Status != nil {
		res.Status = *in.Status
	}
	if in.Notes != nil {
		res.Notes = *in.Notes
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
