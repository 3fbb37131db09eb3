// Package schedule holds the hour-window gate and the rolling-window rate
// limiter the dispatcher and orchestrator share.
package schedule

import "github.com/yetkin-kariyer/botfleet/internal/domain/fleet"

// ActiveHours resolves the hour set an actor is allowed to act in. Actor
// hours win over fleet hours; when both are empty the fleet default applies.
func ActiveHours(actorHours, fleetHours []int) []int {
	if len(actorHours) > 0 {
		return actorHours
	}
	if len(fleetHours) > 0 {
		return fleetHours
	}
	return fleet.DefaultActiveHours
}

// IsActiveHour reports whether the given UTC hour is in the resolved hour
// set.
func IsActiveHour(actorHours, fleetHours []int, utcHour int) bool {
	for _, h := range ActiveHours(actorHours, fleetHours) {
		if h == utcHour {
			return true
		}
	}
	return false
}
