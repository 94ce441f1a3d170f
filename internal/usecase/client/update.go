package client

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/tallermotors/autoservice-api/internal/audit"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
	"github.com/tallermotors/autoservice-api/internal/integrity"
	"github.com/tallermotors/autoservice-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateClientInput is a partial patch: nil means "leave unchanged".
type UpdateClientInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Age      *int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateClient struct {
	repo      domain.Repository
	integrity *integrity.Engine
	audit     *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	engine *integrity.Engine,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:      repo,
		integrity: engine,
		audit:     audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	id string,
	in UpdateClientInput,
) (*models.Client, error) {

	clientID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errNotFound()
		}
		return nil, err
	}

	if in.Email != nil {
		email := integrity.NormalizeEmail(*in.Email)
		if err := uc.integrity.EnsureEmailUnique(ctx, email, &clientID); err != nil {
			return nil, err
		}
		client.Email = email
	}

	if in.Password != nil {
		// hashing happens only when the password is actually being changed
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		client.PasswordHash = string(hashed)
	}

	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Age != nil {
		client.Age = *in.Age
	}

	if err := uc.repo.UpdateClient(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.ErrBusiness(
				httperr.CodeDuplicateEmail,
				"a client with this email already exists",
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
