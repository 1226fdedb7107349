// Package statemachine defines the per-entity status transition tables and
// the legality checks every status change goes through.
package statemachine

// EntityKind identifies which transition table applies
type EntityKind string

const (
	KindMerchant     EntityKind = "merchant"
	KindBooking      EntityKind = "booking"
	KindReservation  EntityKind = "reservation"
	KindServiceOrder EntityKind = "service_order"
)

// transitions maps each entity kind to its table of current status ->
// directly reachable statuses. A status that appears as a key with an empty
// slice (or not at all as a key) is terminal.
var transitions = map[EntityKind]map[string][]string{
	KindMerchant: {
		"pending":   {"submitted"},
		"submitted": {"approved", "rejected"},
		"approved":  {"active", "suspended"},
		"active":    {"suspended"},
		"rejected":  {"pending"},
		"suspended": {"active"},
	},
	KindBooking: {
		"pending":   {"confirmed", "cancelled"},
		"confirmed": {"completed", "no_show", "cancelled"},
		"cancelled": {},
		"completed": {},
		"no_show":   {},
	},
	KindReservation: {
		"pending":     {"confirmed", "cancelled"},
		"confirmed":   {"checked_in", "cancelled"},
		"checked_in":  {"checked_out"},
		"checked_out": {},
		"cancelled":   {},
	},
	KindServiceOrder: {
		"pending":    {"received", "cancelled"},
		"received":   {"processing", "cancelled"},
		"processing": {"ready"},
		"ready":      {"completed", "delivering"},
		"delivering": {"completed"},
		"completed":  {},
		"cancelled":  {},
	},
}

// reasonRequired lists target statuses that must carry a non-empty reason
var reasonRequired = map[EntityKind]map[string]bool{
	KindMerchant: {
		"rejected":  true,
		"suspended": true,
	},
}

// IsKnownKind reports whether the entity kind has a transition table
func IsKnownKind(kind EntityKind) bool {
	_, ok := transitions[kind]
	return ok
}

// IsKnownStatus reports whether the status belongs to the kind's enumeration
func IsKnownStatus(kind EntityKind, status string) bool {
	table, ok := transitions[kind]
	if !ok {
		return false
	}
	if _, ok := table[status]; ok {
		return true
	}
	return false
}

// IsLegalTransition reports whether from -> to is in the transition table.
// Unknown kinds, unknown statuses, and self-transitions are all illegal.
func IsLegalTransition(kind EntityKind, from, to string) bool {
	table, ok := transitions[kind]
	if !ok {
		return false
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses directly reachable from the given
// status. The result is empty for terminal or unrecognized statuses.
func AllowedTransitions(kind EntityKind, from string) []string {
	table, ok := transitions[kind]
	if !ok {
		return nil
	}
	allowed := table[from]
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether the status has no outgoing transitions
func IsTerminal(kind EntityKind, status string) bool {
	return IsKnownStatus(kind, status) && len(transitions[kind][status]) == 0
}

// RequiresReason reports whether transitioning to the target status must be
// accompanied by a non-empty reason, independent of transition legality.
func RequiresReason(kind EntityKind, to string) bool {
	return reasonRequired[kind][to]
}
