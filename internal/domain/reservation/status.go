package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// There is no enforced transition graph: any status may replace any other
// via update. Only membership in the set is validated.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether a reservation in this status blocks deletion of
// its owning client.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

func InitialStatus() Status {
	return StatusPending
}
