package floor

import (
	"context"
	"errors"
	"skydesk/internal/catalog"
	"skydesk/pkg/logger"
	"skydesk/pkg/model"
	"testing"
	"time"
)

type mockFetcher struct {
	allBookingsFunc func(ctx context.Context) ([]model.BookingRecord, error)
}

func (m *mockFetcher) AllBookings(ctx context.Context) ([]model.BookingRecord, error) {
	if m.allBookingsFunc != nil {
		return m.allBookingsFunc(ctx)
	}
	return nil, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
}

func booking(id int, unitID string) model.BookingRecord {
	return model.BookingRecord{
		ID:           id,
		UserID:       7,
		UnitID:       unitID,
		UnitCategory: model.CategoryHotDesk,
		Price:        399,
		BookingDate:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestReconciler(fetcher BookingFetcher) *Reconciler {
	return NewReconciler(catalog.Default(), fetcher, testLogger())
}

func TestClassifyPrecedence(t *testing.T) {
	fetcher := &mockFetcher{
		allBookingsFunc: func(ctx context.Context) ([]model.BookingRecord, error) {
			return []model.BookingRecord{booking(1, "A-01")}, nil
		},
	}
	r := newTestReconciler(fetcher)
	r.LoadOccupancy(context.Background())

	tests := []struct {
		name   string
		unitID string
		setup  func()
		want   Status
	}{
		{
			name:   "booked unit is occupied",
			unitID: "A-01",
			want:   StatusOccupied,
		},
		{
			name:   "untouched unit is available",
			unitID: "B-02",
			want:   StatusAvailable,
		},
		{
			name:   "toggled unit is selected",
			unitID: "C-02",
			setup: func() {
				r.ToggleSelect(model.Unit{ID: "C-02", Category: model.CategoryPrivateCabin, BasePrice: 25000})
			},
			want: StatusSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			if got := r.Classify(tt.unitID); got.Status != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.unitID, got.Status, tt.want)
			}
		})
	}
}

func TestClassifyOccupiedCarriesBooking(t *testing.T) {
	fetcher := &mockFetcher{
		allBookingsFunc: func(ctx context.Context) ([]model.BookingRecord, error) {
			return []model.BookingRecord{booking(42, "B-03")}, nil
		},
	}
	r := newTestReconciler(fetcher)
	r.LoadOccupancy(context.Background())

	state := r.Classify("B-03")
	if state.Status != StatusOccupied {
		t.Fatalf("status = %s, want occupied", state.Status)
	}
	if state.Booking == nil || state.Booking.ID != 42 {
		t.Errorf("occupied state should carry the booking record, got %+v", state.Booking)
	}

	if available := r.Classify("B-04"); available.Booking != nil {
		t.Errorf("available state should not carry a booking, got %+v", available.Booking)
	}
}

func TestToggleSelectOccupiedIsNoOp(t *testing.T) {
	fetcher := &mockFetcher{
		allBookingsFunc: func(ctx context.Context) ([]model.BookingRecord, error) {
			return []model.BookingRecord{booking(1, "A-01")}, nil
		},
	}
	r := newTestReconciler(fetcher)
	r.LoadOccupancy(context.Background())

	state := r.ToggleSelect(model.Unit{ID: "A-01", Category: model.CategoryHotDesk, BasePrice: 399})

	if state.Status != StatusOccupied {
		t.Errorf("toggle on occupied unit returned %s, want occupied", state.Status)
	}
	if len(r.Selection()) != 0 {
		t.Errorf("selection changed after toggling an occupied unit: %v", r.Selection())
	}
}

func TestToggleSelectRoundTrip(t *testing.T) {
	r := newTestReconciler(&mockFetcher{})
	unit := model.Unit{ID: "A-05", Category: model.CategoryHotDesk, BasePrice: 399}

	r.ToggleSelect(unit)
	if got := r.Classify("A-05"); got.Status != StatusSelected {
		t.Fatalf("after first toggle: %s, want selected", got.Status)
	}

	r.ToggleSelect(unit)
	if got := r.Classify("A-05"); got.Status != StatusAvailable {
		t.Errorf("after second toggle: %s, want available", got.Status)
	}
	if len(r.Selection()) != 0 {
		t.Errorf("selection not empty after round trip: %v", r.Selection())
	}
}

func TestSelectionPreservesInsertionOrder(t *testing.T) {
	r := newTestReconciler(&mockFetcher{})
	ids := []string{"C-02", "A-01", "B-07"}
	for _, id := range ids {
		r.ToggleSelect(model.Unit{ID: id, BasePrice: 1})
	}

	// Deselect the middle one, then re-add it: it moves to the end.
	r.ToggleSelect(model.Unit{ID: "A-01", BasePrice: 1})
	r.ToggleSelect(model.Unit{ID: "A-01", BasePrice: 1})

	want := []string{"C-02", "B-07", "A-01"}
	got := r.Selection()
	if len(got) != len(want) {
		t.Fatalf("selection size = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("selection[%d] = %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestLoadOccupancyDegradesOnFetchFailure(t *testing.T) {
	fetcher := &mockFetcher{
		allBookingsFunc: func(ctx context.Context) ([]model.BookingRecord, error) {
			return nil, errors.New("connection refused")
		},
	}
	r := newTestReconciler(fetcher)
	r.LoadOccupancy(context.Background())

	if r.OccupiedCount() != 0 {
		t.Errorf("occupied count = %d after failed fetch, want 0", r.OccupiedCount())
	}
	if got := r.Classify("A-01"); got.Status != StatusAvailable {
		t.Errorf("after failed fetch, A-01 = %s, want available", got.Status)
	}
}

func TestSetOccupancyEvictsNewlyBookedSelection(t *testing.T) {
	r := newTestReconciler(&mockFetcher{})
	r.ToggleSelect(model.Unit{ID: "A-03", BasePrice: 399})
	r.ToggleSelect(model.Unit{ID: "B-02", BasePrice: 800})

	r.SetOccupancy([]model.BookingRecord{booking(9, "A-03")})

	if got := r.Classify("A-03"); got.Status != StatusOccupied {
		t.Errorf("A-03 = %s, want occupied", got.Status)
	}
	selection := r.Selection()
	if len(selection) != 1 || selection[0].ID != "B-02" {
		t.Errorf("selection after eviction = %v, want [B-02]", selection)
	}
}

func TestSetOccupancyToleratesUnknownUnits(t *testing.T) {
	r := newTestReconciler(&mockFetcher{})

	// A record for a unit the catalog does not know must still count as
	// occupied; the server snapshot wins.
	r.SetOccupancy([]model.BookingRecord{booking(3, "Z-99")})

	if got := r.Classify("Z-99"); got.Status != StatusOccupied {
		t.Errorf("Z-99 = %s, want occupied", got.Status)
	}
}

func TestClearSelection(t *testing.T) {
	r := newTestReconciler(&mockFetcher{})
	r.ToggleSelect(model.Unit{ID: "A-01", BasePrice: 399})
	r.ToggleSelect(model.Unit{ID: "A-02", BasePrice: 399})

	r.ClearSelection()

	if len(r.Selection()) != 0 {
		t.Errorf("selection not empty after clear: %v", r.Selection())
	}
	if got := r.Classify("A-01"); got.Status != StatusAvailable {
		t.Errorf("A-01 = %s after clear, want available", got.Status)
	}
}
