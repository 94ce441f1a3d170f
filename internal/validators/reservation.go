package validators

import (
	"fmt"
	"unicode/utf8"

	domain "github.com/tallermotors/autoservice-api/internal/domain/reservation"
)

const (
	vehicleMin = 2
	vehicleMax = 100

	notesMax = 500
)

func checkVehicle(vehicle string) []string {
	if n := utf8.RuneCountInString(vehicle); n < vehicleMin || n > vehicleMax {
		return []string{fmt.Sprintf("vehicle must be between %d and %d characters", vehicleMin, vehicleMax)}
	}
	return nil
}

func checkServiceType(serviceType string) []string {
	if !domain.ServiceType(serviceType).Valid() {
		return []string{fmt.Sprintf("serviceType must be one of %v", domain.ServiceTypes())}
	}
	return nil
}

func checkStatus(status string) []string {
	if !domain.Status(status).Valid() {
		return []string{"status must be one of Pending, In progress, Completed, Cancelled"}
	}
	return nil
}

func checkNotes(notes string) []string {
	if utf8.RuneCountInString(notes) > notesMax {
		return []string{fmt.Sprintf("notes must not exceed %d characters", notesMax)}
	}
	return nil
}

// ValidateReservationCreate checks field shape and enum membership. The
// client reference and the future-date rule belong to the integrity engine.
// An empty status is allowed and defaults to Pending downstream.
func ValidateReservationCreate(vehicle, serviceType, status, notes string) []string {
	var errs []string
	errs = append(errs, checkVehicle(vehicle)...)
	errs = append(errs, checkServiceType(serviceType)...)
	if status != "" {
		errs = append(errs, checkStatus(status)...)
	}
	errs = append(errs, checkNotes(notes)...)
	return errs
}

// ValidateReservationUpdate validates only the fields present in the patch.
func ValidateReservationUpdate(vehicle, serviceType, status, notes *string) []string {
	var errs []string
	if vehicle != nil {
		errs = append(errs, checkVehicle(*vehicle)...)
	}
	if serviceType != nil {
		errs = append(errs, checkServiceType(*serviceType)...)
	}
	if status != nil {
		errs = append(errs, checkStatus(*status)...)
	}
	if notes != nil {
		errs = append(errs, checkNotes(*notes)...)
	}
	return errs
}
