package reservation

import (
	"context"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/integrity"
	"github.com/tallermotors/autoservice-api/internal/models"
	"github.com/tallermotors/autoservice-api/internal/pagination"
)

// ListReservationsByClient lists one client's reservations. The client must
// exist; a bad or unknown identifier fails the same way reservation writes do.
type ListReservationsByClient struct {
	repo      domain.Repository
	integrity *integrity.Engine
}

func NewListReservationsByClient(
	repo domain.Repository,
	engine *integrity.Engine,
) *ListReservationsByClient {
	return &ListReservationsByClient{
		repo:      repo,
		integrity: engine,
	}
}

func (uc *ListReservationsByClient) Execute(
	ctx context.Context,
	clientID string,
	page pagination.Params,
) ([]models.Reservation, pagination.Summary, error) {

	id, err := uc.integrity.EnsureClientExists(ctx, clientID)
	if err != nil {
		return nil, pagination.Summary{}, err
	}

	reservations, total, err := uc.repo.ListReservations(
		ctx,
		domain.ReservationFilter{ClientID: &id},
		page.Offset(),
		page.Limit,
	)
	if err != nil {
		return nil, pagination.Summary{}, err
	}

	return reservations, page.Summarize(total), nil
}
