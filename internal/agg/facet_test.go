package agg_test

import (
	"reflect"
	"testing"

	"hotelera/internal/agg"
	"hotelera/internal/domain"
)

var allStatuses = []domain.BookingStatus{
	domain.BookingConfirmed,
	domain.BookingPending,
	domain.BookingCancelled,
}

func TestToggle_AddAndRemove(t *testing.T) {
	active := []domain.BookingStatus{domain.BookingConfirmed}

	next := agg.Toggle(active, allStatuses, domain.BookingPending)
	want := []domain.BookingStatus{domain.BookingConfirmed, domain.BookingPending}
	if !reflect.DeepEqual(next, want) {
		t.Fatalf("add: %v", next)
	}

	next = agg.Toggle(next, allStatuses, domain.BookingPending)
	if !reflect.DeepEqual(next, active) {
		t.Fatalf("remove: %v", next)
	}
}

func TestToggle_RemovingLastResetsToAll(t *testing.T) {
	active := []domain.BookingStatus{domain.BookingPending}
	next := agg.Toggle(active, allStatuses, domain.BookingPending)
	if !reflect.DeepEqual(next, allStatuses) {
		t.Fatalf("expected reset to all, got %v", next)
	}
}

func TestToggle_DoubleToggleFromFullIsStable(t *testing.T) {
	// from "all", toggling a value off and back on lands on a set with the
	// same members as all
	off := agg.Toggle(allStatuses, allStatuses, domain.BookingCancelled)
	if len(off) != len(allStatuses)-1 {
		t.Fatalf("off: %v", off)
	}
	on := agg.Toggle(off, allStatuses, domain.BookingCancelled)
	if len(on) != len(allStatuses) {
		t.Fatalf("on: %v", on)
	}
	for _, s := range allStatuses {
		found := false
		for _, v := range on {
			if v == s {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing %s in %v", s, on)
		}
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	active := []domain.BookingStatus{domain.BookingConfirmed, domain.BookingPending}
	snapshot := append([]domain.BookingStatus(nil), active...)
	_ = agg.Toggle(active, allStatuses, domain.BookingCancelled)
	if !reflect.DeepEqual(active, snapshot) {
		t.Fatalf("input mutated: %v", active)
	}
}
