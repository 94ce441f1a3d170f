package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/models"
)

// MemoryRepository is an in-memory implementation of the domain Repository,
// used to test the integrity engine and the use cases without a database.
// It mirrors the store-level behavior the GORM repository relies on,
// including the unique-email constraint.
type MemoryRepository struct {
	mu           sync.RWMutex
	clients      map[uuid.UUID]models.Client
	reservations map[uuid.UUID]models.Reservation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		clients:      make(map[uuid.UUID]models.Client),
		reservations: make(map[uuid.UUID]models.Reservation),
	}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (m *MemoryRepository) GetClientByID(
	_ context.Context,
	id uuid.UUID,
) (*models.Client, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	client, ok := m.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &client, nil
}

func (m *MemoryRepository) FindClientByEmail(
	_ context.Context,
	email string,
) (*models.Client, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, client := range m.clients {
		if strings.EqualFold(client.Email, email) {
			c := client
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemoryRepository) ListClients(
	_ context.Context,
	filter domain.ClientFilter,
	offset int,
	limit int,
) ([]models.Client, int64, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.Client
	for _, client := range m.clients {
		if filter.Name != "" && !containsFold(client.Name, filter.Name) {
			continue
		}
		if filter.Email != "" && !containsFold(client.Email, filter.Email) {
			continue
		}
		matched = append(matched, client)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return page(matched, offset, limit), int64(len(matched)), nil
}

func (m *MemoryRepository) CreateClient(
	_ context.Context,
	client *models.Client,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.clients {
		if strings.EqualFold(existing.Email, client.Email) {
			return domain.ErrDuplicate
		}
	}

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	client.UpdatedAt = time.Now()

	m.clients[client.ID] = *client
	return nil
}

func (m *MemoryRepository) UpdateClient(
	_ context.Context,
	client *models.Client,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}

	for id, existing := range m.clients {
		if id != client.ID && strings.EqualFold(existing.Email, client.Email) {
			return domain.ErrDuplicate
		}
	}

	client.UpdatedAt = time.Now()
	m.clients[client.ID] = *client
	return nil
}

func (m *MemoryRepository) DeleteClient(
	_ context.Context,
	id uuid.UUID,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (m *MemoryRepository) GetReservationByID(
	_ context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}

func (m *MemoryRepository) ListReservations(
	_ context.Context,
	filter domain.ReservationFilter,
	offset int,
	limit int,
) ([]models.Reservation, int64, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.Reservation
	for _, res := range m.reservations {
		if filter.ClientID != nil && res.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != "" && res.Status != filter.Status {
			continue
		}
		if filter.Service != "" && !containsFold(res.ServiceType, filter.Service) {
			continue
		}
		if filter.StartDate != nil && res.ScheduledDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && res.ScheduledDate.After(*filter.EndDate) {
			continue
		}
		matched = append(matched, res)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ScheduledDate.Before(matched[j].ScheduledDate)
	})

	return page(matched, offset, limit), int64(len(matched)), nil
}

func (m *MemoryRepository) CreateReservation(
	_ context.Context,
	res *models.Reservation,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	res.UpdatedAt = time.Now()

	m.reservations[res.ID] = *res
	return nil
}

func (m *MemoryRepository) UpdateReservation(
	_ context.Context,
	res *models.Reservation,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reservations[res.ID]; !ok {
		return domain.ErrNotFound
	}

	res.UpdatedAt = time.Now()
	m.reservations[res.ID] = *res
	return nil
}

func (m *MemoryRepository) DeleteReservation(
	_ context.Context,
	id uuid.UUID,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reservations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.reservations, id)
	return nil
}

// --------------------------------------------------
// Cross-entity
// --------------------------------------------------

func (m *MemoryRepository) CountActiveReservations(
	_ context.Context,
	clientID uuid.UUID,
) (int64, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, res := range m.reservations {
		if res.ClientID == clientID && domain.Status(res.Status).IsActive() {
			count++
		}
	}
	return count, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), lower(needle))
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// Compile-time check
var _ domain.Repository = (*MemoryRepository)(nil)
