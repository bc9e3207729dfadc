// Package allocation derives room and vehicle counts from party size.
package allocation

import (
	"fmt"

	"travel-pricing/internal/errors"
)

// Occupancy limits enforced by the validation check
const (
	MaxAdultsPerRoom    = 3
	MaxOccupantsPerRoom = 4
)

// RequiredRooms returns the suggested room count for a party.
// Two adults share a room; a single room is forced up to two rooms when
// it would otherwise hold two adults plus three or more children.
func RequiredRooms(adults, children int) int {
	if adults < 0 {
		adults = 0
	}
	rooms := (adults + 1) / 2
	if rooms == 1 && children > 2 {
		rooms = 2
	}
	if rooms < 1 {
		rooms = 1
	}
	return rooms
}

// OccupancyReport is the result of an occupancy constraint check.
// A violation does not block pricing; the caller decides whether to
// surface it or refuse submission.
type OccupancyReport struct {
	// Valid is true when no constraint is exceeded
	Valid bool `json:"valid"`

	// Violations lists human-readable constraint breaches
	Violations []string `json:"violations,omitempty"`
}

// CheckOccupancy validates a party against a chosen room count.
// It reports violations but never adjusts the room count itself.
func CheckOccupancy(adults, children, rooms int) OccupancyReport {
	report := OccupancyReport{Valid: true}
	if rooms < 1 {
		report.Valid = false
		report.Violations = append(report.Violations, fmt.Sprintf("room count must be at least 1, got %d", rooms))
		return report
	}

	if adults > rooms*MaxAdultsPerRoom {
		report.Valid = false
		report.Violations = append(report.Violations,
			fmt.Sprintf("%d adults exceed the limit of %d per room across %d room(s)", adults, MaxAdultsPerRoom, rooms))
	}
	if adults+children > rooms*MaxOccupantsPerRoom {
		report.Valid = false
		report.Violations = append(report.Violations,
			fmt.Sprintf("%d occupants exceed the limit of %d per room across %d room(s)", adults+children, MaxOccupantsPerRoom, rooms))
	}
	return report
}

// RequiredVehicles returns the vehicle count for a party, minimum 1.
func RequiredVehicles(totalPax, vehicleCapacity int) (int, error) {
	if vehicleCapacity <= 0 {
		return 0, errors.InvalidCapacity(vehicleCapacity)
	}
	if totalPax <= 0 {
		return 1, nil
	}
	vehicles := (totalPax + vehicleCapacity - 1) / vehicleCapacity
	if vehicles < 1 {
		vehicles = 1
	}
	return vehicles, nil
}
