package reservation

import (
	"time"

	"github.com/google/uuid"
)

// ClientFilter narrows a client listing. Name and Email are partial,
// case-insensitive matches; both present means both must match.
type ClientFilter struct {
	Name  string
	Email string
}

// ReservationFilter narrows a reservation listing. ClientID and Status are
// exact matches, Service is a partial case-insensitive match, and the date
// bounds are inclusive on the scheduled date.
type ReservationFilter struct {
	ClientID  *uuid.UUID
	Status    string
	Service   string
	StartDate *time.Time
	EndDate   *time.Time
}
