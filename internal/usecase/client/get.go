package client

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
	"github.com/tallermotors/autoservice-api/internal/models"
)

func parseID(id string) (uuid.UUID, error) {
	clientID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, httperr.ErrBusiness(
			httperr.CodeInvalidReference,
			"invalid client identifier",
		)
	}
	return clientID, nil
}

func errNotFound() error {
	return httperr.ErrBusiness(
		httperr.CodeClientNotFound,
		"client not found",
	)
}

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	id string,
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

	return client, nil
}
