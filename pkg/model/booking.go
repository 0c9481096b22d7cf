package model

import "time"

// BookingRecord is a server-confirmed reservation of a unit. UnitCategory
// and Price are snapshots taken at booking time; they may drift from the
// current catalog and are trusted as-is for display.
type BookingRecord struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	UnitID       string    `json:"unit_id"`
	UnitCategory Category  `json:"unit_type"`
	Price        float64   `json:"price"`
	BookingDate  time.Time `json:"booking_date"`
}

// BookSeatRequest is the payload of POST /book-seat, one request per unit.
type BookSeatRequest struct {
	UserID   int      `json:"user_id" validate:"required,min=1"`
	UnitID   string   `json:"unit_id" validate:"required,unit_id"`
	UnitType Category `json:"unit_type" validate:"required"`
	Price    float64  `json:"price" validate:"min=0"`
}
