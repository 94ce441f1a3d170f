package reservation

import (
	"context"
	"time"

	"github.com/tallermotors/autoservice-api/internal/audit"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/integrity"
	"github.com/tallermotors/autoservice-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ClientID      string
	Vehicle       string
	ServiceType   string
	Status        string
	ScheduledDate time.Time
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo      domain.Repository
	integrity *integrity.Engine
	audit     *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	engine *integrity.Engine,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:      repo,
		integrity: engine,
		audit:     audit,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	clientID, err := uc.integrity.EnsureClientExists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	if err := uc.integrity.EnsureFutureDate(in.ScheduledDate); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	res := &models.Reservation{
		ClientID:      clientID,
		Vehicle:       in.Vehicle,
		ServiceType:   in.ServiceType,
		Status:        status,
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
