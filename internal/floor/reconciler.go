// Package floor merges the static catalog with live booking data and tracks
// the user's in-progress selection.
package floor

import (
	"context"
	"skydesk/pkg/logger"
	"skydesk/pkg/model"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
	StatusSelected  Status = "selected"
)

// UnitState is the classification of one unit for a reconciliation pass.
// Booking is set only when the unit is occupied.
type UnitState struct {
	Status  Status
	Booking *model.BookingRecord
}

// BookingFetcher supplies the current booking records from the API.
type BookingFetcher interface {
	AllBookings(ctx context.Context) ([]model.BookingRecord, error)
}

// Reconciler answers, for any unit, whether it is available, occupied or
// selected, and owns the selection set. Single-actor: not safe for
// concurrent use.
type Reconciler struct {
	fetcher BookingFetcher
	log     *logger.Logger

	catalog []model.Unit

	// Snapshot of server-side occupancy, keyed by unit id. Records whose
	// unit id is unknown to the catalog are kept as well; the server
	// snapshot is trusted for display.
	occupied map[string]*model.BookingRecord

	// Selection in insertion order, with a membership index alongside.
	selection []model.Unit
	selected  map[string]bool
}

func NewReconciler(units []model.Unit, fetcher BookingFetcher, log *logger.Logger) *Reconciler {
	return &Reconciler{
		fetcher:  fetcher,
		log:      log,
		catalog:  units,
		occupied: map[string]*model.BookingRecord{},
		selected: map[string]bool{},
	}
}

// Catalog returns the static unit list in catalog order.
func (r *Reconciler) Catalog() []model.Unit {
	return r.catalog
}

// LoadOccupancy snapshots the current booking records. A fetch failure
// degrades to "no occupancy known" so the floor stays renderable; the error
// is logged, never returned.
func (r *Reconciler) LoadOccupancy(ctx context.Context) {
	bookings, err := r.fetcher.AllBookings(ctx)
	if err != nil {
		r.log.Warn("Failed to sync floor occupancy, treating all units as available", "error", err)
		r.SetOccupancy(nil)
		return
	}
	r.SetOccupancy(bookings)
	r.log.Debug("Floor occupancy loaded", "bookings", len(bookings))
}

// SetOccupancy replaces the snapshot. Selected units that turned out to be
// occupied are evicted from the selection.
func (r *Reconciler) SetOccupancy(bookings []model.BookingRecord) {
	r.occupied = make(map[string]*model.BookingRecord, len(bookings))
	for i := range bookings {
		r.occupied[bookings[i].UnitID] = &bookings[i]
	}

	if len(r.selection) == 0 {
		return
	}
	kept := r.selection[:0]
	for _, unit := range r.selection {
		if _, taken := r.occupied[unit.ID]; taken {
			delete(r.selected, unit.ID)
			r.log.Info("Dropping selected unit, it was booked elsewhere", "unit_id", unit.ID)
			continue
		}
		kept = append(kept, unit)
	}
	r.selection = kept
}

// Classify resolves a unit's state. Occupied wins over selected.
func (r *Reconciler) Classify(unitID string) UnitState {
	if booking, ok := r.occupied[unitID]; ok {
		return UnitState{Status: StatusOccupied, Booking: booking}
	}
	if r.selected[unitID] {
		return UnitState{Status: StatusSelected}
	}
	return UnitState{Status: StatusAvailable}
}

// ToggleSelect is the sole mutator of the selection set. Selecting an
// occupied unit is a no-op. Returns the unit's state after the toggle.
func (r *Reconciler) ToggleSelect(unit model.Unit) UnitState {
	if _, taken := r.occupied[unit.ID]; taken {
		return r.Classify(unit.ID)
	}

	if r.selected[unit.ID] {
		delete(r.selected, unit.ID)
		for i, candidate := range r.selection {
			if candidate.ID == unit.ID {
				r.selection = append(r.selection[:i], r.selection[i+1:]...)
				break
			}
		}
		return UnitState{Status: StatusAvailable}
	}

	r.selected[unit.ID] = true
	r.selection = append(r.selection, unit)
	return UnitState{Status: StatusSelected}
}

// Selection returns the selected units in insertion order.
func (r *Reconciler) Selection() []model.Unit {
	out := make([]model.Unit, len(r.selection))
	copy(out, r.selection)
	return out
}

func (r *Reconciler) ClearSelection() {
	r.selection = nil
	r.selected = map[string]bool{}
}

// OccupiedCount reports how many units the snapshot marks as booked.
func (r *Reconciler) OccupiedCount() int {
	return len(r.occupied)
}
