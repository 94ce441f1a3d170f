package client

import (
	"context"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/models"
	"github.com/tallermotors/autoservice-api/internal/pagination"
)

type ListClientsInput struct {
	Filter domain.ClientFilter
	Page   pagination.Params
}

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	in ListClientsInput,
) ([]models.Client, pagination.Summary, error) {

	clients, total, err := uc.repo.ListClients(
		ctx,
		in.Filter,
		in.Page.Offset(),
		in.Page.Limit,
	)
	if err != nil {
		return nil, pagination.Summary{}, err
	}

	return clients, in.Page.Summarize(total), nil
}
