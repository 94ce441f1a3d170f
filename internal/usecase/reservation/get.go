package reservation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
	"github.com/tallermotors/autoservice-api/internal/models"
)

func parseID(id string) (uuid.UUID, error) {
	resID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, httperr.ErrBusiness(
			httperr.CodeInvalidReference,
			"invalid reservation identifier",
		)
	}
	return resID, nil
}

func errNotFound() error {
	return httperr.ErrBusiness(
		httperr.CodeReservationNotFound,
		"reservation not found",
	)
}

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	id string,
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

	return res, nil
}
