// Package fees computes the amount owed for an event registration.
package fees

import (
	"strconv"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// Calculate returns the total fee owed for registering a team of the given
// size for the event. Pricing precedence:
//
//  1. per-person rate (when > 0): rate x team size
//  2. fee structure (when non-empty): exact team-size lookup; an unlisted
//     size falls back to the flat fee — there is no interpolation
//  3. flat fee
//
// The function is total: any non-negative team size and well-formed event
// yields an amount without error.
func Calculate(event *models.Event, teamSize int) float64 {
	if event.FeePerPerson > 0 {
		return event.FeePerPerson * float64(teamSize)
	}

	if len(event.FeeStructure) > 0 {
		if amount, ok := event.FeeStructure[strconv.Itoa(teamSize)]; ok && amount > 0 {
			return amount
		}
		return event.Fee
	}

	return event.Fee
}
