package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/tallermotors/autoservice-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Client, error)

	FindClientByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	ListClients(
		ctx context.Context,
		filter ClientFilter,
		offset int,
		limit int,
	) ([]models.Client, int64, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	DeleteClient(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Reservation --------
	GetReservationByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Reservation, error)

	ListReservations(
		ctx context.Context,
		filter ReservationFilter,
		offset int,
		limit int,
	) ([]models.Reservation, int64, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Cross-entity --------
	CountActiveReservations(
		ctx context.Context,
		clientID uuid.UUID,
	) (int64, error)
}
