// Package admin derives the dashboard view of the floor: revenue and
// occupancy aggregates, the transaction audit log, and the blueprint grid.
package admin

import (
	"math"
	"skydesk/internal/catalog"
	"skydesk/internal/floor"
	"skydesk/pkg/model"
)

// FloorUnitCount is the fixed size of the blueprint grid the dashboard
// renders. Occupancy rate is computed against it.
const FloorUnitCount = 48

// gridPrefix labels the synthetic blueprint cells (S-01 .. S-48). These are
// display coordinates, independent of the bookable catalog ids.
const gridPrefix = "S"

type Stats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	OccupiedUnits int     `json:"occupied_units"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// ComputeStats aggregates the live booking list. Revenue sums the
// server-side price snapshots; the rate is a percentage with one decimal.
func ComputeStats(bookings []model.BookingRecord) Stats {
	var revenue float64
	for _, b := range bookings {
		revenue += b.Price
	}

	rate := float64(len(bookings)) / FloorUnitCount * 100
	return Stats{
		TotalRevenue:  revenue,
		OccupiedUnits: len(bookings),
		OccupancyRate: math.Round(rate*10) / 10,
	}
}

// AuditLog returns the bookings newest-first for the transaction table. The
// input (API order, oldest first) is left untouched.
func AuditLog(bookings []model.BookingRecord) []model.BookingRecord {
	out := make([]model.BookingRecord, len(bookings))
	for i, b := range bookings {
		out[len(bookings)-1-i] = b
	}
	return out
}

// GridCell is one cell of the interactive blueprint.
type GridCell struct {
	UnitID string
	State  floor.UnitState
}

// FloorGrid classifies all 48 blueprint cells against the booking list,
// computed once per reconciliation pass rather than per hover.
func FloorGrid(bookings []model.BookingRecord) []GridCell {
	byUnit := make(map[string]*model.BookingRecord, len(bookings))
	for i := range bookings {
		byUnit[bookings[i].UnitID] = &bookings[i]
	}

	cells := make([]GridCell, 0, FloorUnitCount)
	for i := 1; i <= FloorUnitCount; i++ {
		id := catalog.UnitID(gridPrefix, i)
		state := floor.UnitState{Status: floor.StatusAvailable}
		if booking, ok := byUnit[id]; ok {
			state = floor.UnitState{Status: floor.StatusOccupied, Booking: booking}
		}
		cells = append(cells, GridCell{UnitID: id, State: state})
	}
	return cells
}
