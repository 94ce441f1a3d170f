package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicate
	}
	return err
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ReservationGormRepository) GetClientByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *ReservationGormRepository) FindClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *ReservationGormRepository) ListClients(
	ctx context.Context,
	filter domain.ClientFilter,
	offset int,
	limit int,
) ([]models.Client, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+lower(filter.Name)+"%")
	}
	if filter.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+lower(filter.Email)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, 0, translate(err)
	}

	return clients, total, nil
}

func (r *ReservationGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return translate(r.db.WithContext(ctx).Create(client).Error)
}

func (r *ReservationGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return translate(r.db.WithContext(ctx).Save(client).Error)
}

func (r *ReservationGormRepository) DeleteClient(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Client{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	filter domain.ReservationFilter,
	offset int,
	limit int,
) ([]models.Reservation, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Reservation{})

	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Service != "" {
		q = q.Where("LOWER(service_type) LIKE ?", "%"+lower(filter.Service)+"%")
	}
	if filter.StartDate != nil {
		q = q.Where("scheduled_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("scheduled_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var reservations []models.Reservation
	if err := q.
		Order("scheduled_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error; err != nil {
		return nil, 0, translate(err)
	}

	return reservations, total, nil
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return translate(r.db.WithContext(ctx).Create(res).Error)
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return translate(r.db.WithContext(ctx).Save(res).Error)
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Reservation{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Cross-entity
// --------------------------------------------------

func (r *ReservationGormRepository) CountActiveReservations(
	ctx context.Context,
	clientID uuid.UUID,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"client_id = ? AND status IN ?",
			clientID,
			[]string{
				string(domain.StatusPending),
				string(domain.StatusInProgress),
			},
		).
		Count(&count).Error; err != nil {
		return 0, translate(err)
	}

	return count, nil
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
