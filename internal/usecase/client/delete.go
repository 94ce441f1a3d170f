package client

import (
	"context"
	"errors"

	"github.com/tallermotors/autoservice-api/internal/audit"
	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/integrity"
)

type DeleteClient struct {
	repo      domain.Repository
	integrity *integrity.Engine
	audit     *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	engine *integrity.Engine,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:      repo,
		integrity: engine,
		audit:     audit,
	}
}

func (uc *DeleteClient) Execute(
	ctx context.Context,
	id string,
) error {

	clientID, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := uc.repo.GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound()
		}
		return err
	}

	if err := uc.integrity.GuardClientDeletion(ctx, clientID); err != nil {
		return err
	}

	if err := uc.repo.DeleteClient(ctx, clientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound()
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})

	return nil
}
