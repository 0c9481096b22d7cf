package model

// Category classifies a bookable unit. The set is extensible; values mirror
// the labels the booking API stores in unit_type.
type Category string

const (
	CategoryHotDesk       Category = "Hot Desk"
	CategoryDedicatedDesk Category = "Dedicated Desk"
	CategoryPrivateCabin  Category = "Private Cabin"
)

// Unit is one bookable physical space on the floor. BasePrice is in whole
// currency units.
type Unit struct {
	ID        string   `json:"id" validate:"required,unit_id"`
	Category  Category `json:"category" validate:"required"`
	BasePrice int      `json:"base_price" validate:"min=0"`
}
