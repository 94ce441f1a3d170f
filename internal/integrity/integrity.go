// Package integrity enforces the invariants that span clients and
// reservations: email uniqueness, client existence on reservation writes,
// the future-date rule and the active-reservation guard on client deletion.
//
// Every check is check-then-act against current store state; nothing is
// cached between calls. The unique index on the email column is the
// store-level backstop for concurrent writers.
package integrity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
	"github.com/tallermotors/autoservice-api/internal/httperr"
)

type Engine struct {
	repo domain.Repository
}

func New(repo domain.Repository) *Engine {
	return &Engine{repo: repo}
}

// NormalizeEmail is the canonical form used both for storage and for the
// uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EnsureEmailUnique fails when another client already holds the normalized
// email. excludeID lets an update keep its own current email.
func (e *Engine) EnsureEmailUnique(
	ctx context.Context,
	email string,
	excludeID *uuid.UUID,
) error {

	existing, err := e.repo.FindClientByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if excludeID != nil && existing.ID == *excludeID {
		return nil
	}

	return httperr.ErrBusiness(
		httperr.CodeDuplicateEmail,
		"a client with this email already exists",
	)
}

// EnsureClientExists resolves id, distinguishing a malformed identifier from
// a missing record.
func (e *Engine) EnsureClientExists(
	ctx context.Context,
	id string,
) (uuid.UUID, error) {

	clientID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, httperr.ErrBusiness(
			httperr.CodeInvalidReference,
			"invalid client identifier",
		)
	}

	if _, err := e.repo.GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, httperr.ErrBusiness(
				httperr.CodeClientNotFound,
				"client not found",
			)
		}
		return uuid.Nil, err
	}

	return clientID, nil
}

// EnsureFutureDate fails when date is not strictly after now.
func (e *Engine) EnsureFutureDate(date time.Time) error {
	if !date.After(time.Now()) {
		return httperr.ErrBusiness(
			httperr.CodeInvalidDate,
			"scheduled date must be in the future",
		)
	}
	return nil
}

// GuardClientDeletion blocks deletion while the client owns reservations in
// Pending or In progress status.
func (e *Engine) GuardClientDeletion(
	ctx context.Context,
	clientID uuid.UUID,
) error {

	count, err := e.repo.CountActiveReservations(ctx, clientID)
	if err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(
			httperr.CodeHasActiveReservations,
			fmt.Sprintf("client has %d active reservation(s)", count),
		)
	}

	return nil
}
