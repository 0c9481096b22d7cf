package admin

import (
	"skydesk/internal/floor"
	"skydesk/pkg/model"
	"testing"
	"time"
)

func record(id int, unitID string, price float64) model.BookingRecord {
	return model.BookingRecord{
		ID:          id,
		UserID:      1,
		UnitID:      unitID,
		Price:       price,
		BookingDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		bookings []model.BookingRecord
		want     Stats
	}{
		{
			name: "empty floor",
			want: Stats{TotalRevenue: 0, OccupiedUnits: 0, OccupancyRate: 0},
		},
		{
			name: "single booking",
			bookings: []model.BookingRecord{
				record(1, "S-01", 399),
			},
			want: Stats{TotalRevenue: 399, OccupiedUnits: 1, OccupancyRate: 2.1},
		},
		{
			name: "three bookings",
			bookings: []model.BookingRecord{
				record(1, "S-01", 399),
				record(2, "S-07", 800),
				record(3, "S-13", 25000),
			},
			want: Stats{TotalRevenue: 26199, OccupiedUnits: 3, OccupancyRate: 6.3},
		},
		{
			name: "full floor",
			bookings: func() []model.BookingRecord {
				var all []model.BookingRecord
				for i := 1; i <= FloorUnitCount; i++ {
					all = append(all, record(i, "", 100))
				}
				return all
			}(),
			want: Stats{TotalRevenue: 4800, OccupiedUnits: 48, OccupancyRate: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStats(tt.bookings); got != tt.want {
				t.Errorf("ComputeStats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAuditLogNewestFirst(t *testing.T) {
	bookings := []model.BookingRecord{
		record(1, "S-01", 399),
		record(2, "S-02", 800),
		record(3, "S-03", 25000),
	}

	log := AuditLog(bookings)

	if len(log) != 3 {
		t.Fatalf("audit log size = %d, want 3", len(log))
	}
	for i, wantID := range []int{3, 2, 1} {
		if log[i].ID != wantID {
			t.Errorf("log[%d].ID = %d, want %d", i, log[i].ID, wantID)
		}
	}
	// The API-ordered input must stay untouched.
	if bookings[0].ID != 1 {
		t.Error("AuditLog mutated its input")
	}
}

func TestFloorGrid(t *testing.T) {
	bookings := []model.BookingRecord{
		record(5, "S-03", 800),
		record(6, "Z-99", 100), // not a blueprint cell, ignored by the grid
	}

	cells := FloorGrid(bookings)

	if len(cells) != FloorUnitCount {
		t.Fatalf("grid size = %d, want %d", len(cells), FloorUnitCount)
	}
	if cells[0].UnitID != "S-01" || cells[47].UnitID != "S-48" {
		t.Errorf("grid bounds = %s .. %s, want S-01 .. S-48", cells[0].UnitID, cells[47].UnitID)
	}

	occupied := 0
	for _, cell := range cells {
		switch cell.UnitID {
		case "S-03":
			if cell.State.Status != floor.StatusOccupied {
				t.Errorf("S-03 = %s, want occupied", cell.State.Status)
			}
			if cell.State.Booking == nil || cell.State.Booking.ID != 5 {
				t.Errorf("S-03 should carry booking 5, got %+v", cell.State.Booking)
			}
		default:
			if cell.State.Status != floor.StatusAvailable {
				t.Errorf("%s = %s, want available", cell.UnitID, cell.State.Status)
			}
			if cell.State.Booking != nil {
				t.Errorf("%s carries a booking while vacant", cell.UnitID)
			}
		}
		if cell.State.Status == floor.StatusOccupied {
			occupied++
		}
	}
	if occupied != 1 {
		t.Errorf("occupied cells = %d, want 1", occupied)
	}
}
