// Package agg turns raw front-desk records into filtered view lists and
// summary numbers. Everything here is a pure function over a snapshot: the
// caller owns the selection state, the engine only consumes it.
package agg

// Toggle flips value in active and returns the next active set. Removing the
// last active value resets the set to all: an empty facet never silently
// hides every record.
func Toggle[T comparable](active, all []T, value T) []T {
	next := make([]T, 0, len(active)+1)
	found := false
	for _, v := range active {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}
	if len(next) == 0 {
		next = append(next, all...)
	}
	return next
}

func contains[T comparable](set []T, value T) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// containsAny reports whether any of values is in set. An empty set matches
// nothing; an empty values list matches nothing either.
func containsAny[T comparable](set []T, values []T) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}
