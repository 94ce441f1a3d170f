package reservation

import (
	"context"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/models"
	"github.com/tallermotors/autoservice-api/internal/pagination"
)

type ListReservationsInput struct {
	Filter domain.ReservationFilter
	Page   pagination.Params
}

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	in ListReservationsInput,
) ([]models.Reservation, pagination.Summary, error) {

	reservations, total, err := uc.repo.ListReservations(
		ctx,
		in.Filter,
		in.Page.Offset(),
		in.Page.Limit,
	)
	if err != nil {
		return nil, pagination.Summary{}, err
	}

	return reservations, in.Page.Summarize(total), nil
}
