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

type CreateClientInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Age      int
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo      domain.Repository
	integrity *integrity.Engine
	audit     *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	engine *integrity.Engine,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:      repo,
		integrity: engine,
		audit:     audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	email := integrity.NormalizeEmail(in.Email)

	if err := uc.integrity.EnsureEmailUnique(ctx, email, nil); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		Age:          in.Age,
	}

	if err := uc.repo.CreateClient(ctx, client); err != nil {
		// the unique index is the backstop for concurrent creates
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.ErrBusiness(
				httperr.CodeDuplicateEmail,
				"a client with this email already exists",
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
