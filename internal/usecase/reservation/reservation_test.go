package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
	infraRepo "github.com/tallermotors/autoservice-api/internal/infra/repository"
	"github.com/tallermotors/autoservice-api/internal/integrity"
	"github.com/tallermotors/autoservice-api/internal/models"
	"github.com/tallermotors/autoservice-api/internal/pagination"
)

func strPtr(s string) *string { return &s }
func timePtr(t time.Time) *time.Time { return &t }

type fixture struct {
	repo         *infraRepo.MemoryRepository
	create       *CreateReservation
	update       *UpdateReservation
	remove       *DeleteReservation
	get          *GetReservation
	list         *ListReservations
	listByClient *ListReservationsByClient
	clientID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := infraRepo.NewMemoryRepository()
	engine := integrity.New(repo)

	client := &models.Client{
		Name:         "Ana Ruiz",
		Email:        "ana@x.com",
		PasswordHash: "$2a$10$hash",
		Phone:        "+573000000",
		Age:          25,
	}
	require.NoError(t, repo.CreateClient(context.Background(), client))

	return &fixture{
		repo:         repo,
		create:       NewCreateReservation(repo, engine, nil),
		update:       NewUpdateReservation(repo, engine, nil),
		remove:       NewDeleteReservation(repo, nil),
		get:          NewGetReservation(repo),
		list:         NewListReservations(repo),
		listByClient: NewListReservationsByClient(repo, engine),
		clientID:     client.ID,
	}
}

func (f *fixture) input() CreateReservationInput {
	return CreateReservationInput{
		ClientID:      f.clientID.String(),
		Vehicle:       "Mazda 3 2019",
		ServiceType:   "oil change",
		ScheduledDate: time.Now().Add(time.Hour),
	}
}

func (f *fixture) countReservations(t *testing.T) int64 {
	t.Helper()
	_, total, err := f.repo.ListReservations(
		context.Background(), domain.ReservationFilter{}, 0, 1,
	)
	require.NoError(t, err)
	return total
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to Pending", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.create.Execute(ctx, f.input())
		require.NoError(t, err)
		assert.Equal(t, "Pending", res.Status)
		assert.Equal(t, f.clientID, res.ClientID)
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		f := newFixture(t)

		in := f.input()
		in.Status = "In progress"
		res, err := f.create.Execute(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "In progress", res.Status)
	})

	t.Run("one hour ahead succeeds, one second ago fails", func(t *testing.T) {
		f := newFixture(t)

		in := f.input()
		in.ScheduledDate = time.Now().Add(time.Hour)
		_, err := f.create.Execute(ctx, in)
		assert.NoError(t, err)

		in.ScheduledDate = time.Now().Add(-time.Second)
		_, err = f.create.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
	})

	t.Run("nonexistent client fails and creates nothing", func(t *testing.T) {
		f := newFixture(t)

		in := f.input()
		in.ClientID = uuid.New().String()
		_, err := f.create.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))
		assert.EqualValues(t, 0, f.countReservations(t))
	})

	t.Run("malformed client id fails and creates nothing", func(t *testing.T) {
		f := newFixture(t)

		in := f.input()
		in.ClientID = "42"
		_, err := f.create.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidReference))
		assert.EqualValues(t, 0, f.countReservations(t))
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("patching notes does not re-check date or client", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.create.Execute(ctx, f.input())
		require.NoError(t, err)

		// drift the stored date into the past, as time passing would
		res.ScheduledDate = time.Now().Add(-time.Hour)
		require.NoError(t, f.repo.UpdateReservation(ctx, res))

		updated, err := f.update.Execute(ctx, res.ID.String(), UpdateReservationInput{
			Notes: strPtr("bring the spare key"),
		})
		require.NoError(t, err)
		assert.Equal(t, "bring the spare key", updated.Notes)
	})

	t.Run("patching the date re-applies the future rule", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.create.Execute(ctx, f.input())
		require.NoError(t, err)

		_, err = f.update.Execute(ctx, res.ID.String(), UpdateReservationInput{
			ScheduledDate: timePtr(time.Now().Add(-time.Minute)),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
	})

	t.Run("patching the client re-checks existence", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.create.Execute(ctx, f.input())
		require.NoError(t, err)

		_, err = f.update.Execute(ctx, res.ID.String(), UpdateReservationInput{
			ClientID: strPtr(uuid.New().String()),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))
	})

	t.Run("any status may replace any other", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.create.Execute(ctx, f.input())
		require.NoError(t, err)

		for _, status := range []string{"Completed", "Pending", "Cancelled", "In progress"} {
			updated, err := f.update.Execute(ctx, res.ID.String(), UpdateReservationInput{
				Status: strPtr(status),
			})
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.update.Execute(ctx, uuid.New().String(), UpdateReservationInput{})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	})
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes without any guard regardless of status", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.create.Execute(ctx, f.input())
		require.NoError(t, err)

		require.NoError(t, f.remove.Execute(ctx, res.ID.String()))

		_, err = f.get.Execute(ctx, res.ID.String())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		err := f.remove.Execute(ctx, uuid.New().String())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	})
}

func TestListReservations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	base := time.Now().Add(time.Hour)
	for i, svc := range []string{"oil change", "tire change", "brake inspection"} {
		in := f.input()
		in.ServiceType = svc
		// later items scheduled earlier, to exercise the sort
		in.ScheduledDate = base.Add(time.Duration(3-i) * time.Hour)
		_, err := f.create.Execute(ctx, in)
		require.NoError(t, err)
	}

	t.Run("sorted by scheduled date ascending", func(t *testing.T) {
		reservations, summary, err := f.list.Execute(ctx, ListReservationsInput{
			Page: pagination.New(1, 10),
		})
		require.NoError(t, err)
		require.Len(t, reservations, 3)
		assert.EqualValues(t, 3, summary.TotalRecords)
		assert.True(t, reservations[0].ScheduledDate.Before(reservations[1].ScheduledDate))
		assert.True(t, reservations[1].ScheduledDate.Before(reservations[2].ScheduledDate))
	})

	t.Run("partial service filter", func(t *testing.T) {
		reservations, _, err := f.list.Execute(ctx, ListReservationsInput{
			Filter: domain.ReservationFilter{Service: "CHANGE"},
			Page:   pagination.New(1, 10),
		})
		require.NoError(t, err)
		assert.Len(t, reservations, 2)
	})

	t.Run("list by client validates the client", func(t *testing.T) {
		reservations, summary, err := f.listByClient.Execute(
			ctx, f.clientID.String(), pagination.New(1, 10),
		)
		require.NoError(t, err)
		assert.Len(t, reservations, 3)
		assert.EqualValues(t, 3, summary.TotalRecords)

		_, _, err = f.listByClient.Execute(ctx, uuid.New().String(), pagination.New(1, 10))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))
	})
}
