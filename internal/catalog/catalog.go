// Package catalog enumerates the fixed inventory of bookable units. The
// catalog is static: regenerating it always yields the same units in the
// same order.
package catalog

import (
	"fmt"
	"skydesk/pkg/model"
)

// Zone is a contiguous cluster of identically priced units sharing an id
// prefix.
type Zone struct {
	Prefix    string
	Size      int
	Category  model.Category
	BasePrice int
}

// Floor layout constants. Cluster Alpha and Beta are open desks, the C zone
// holds the executive cabins.
const (
	AlphaZoneSize = 12
	BetaZoneSize  = 8
	CabinZoneSize = 4

	HotDeskPrice       = 399
	DedicatedDeskPrice = 800
	PrivateCabinPrice  = 25000
)

// DefaultZones returns the reference floor layout.
func DefaultZones() []Zone {
	return []Zone{
		{Prefix: "A", Size: AlphaZoneSize, Category: model.CategoryHotDesk, BasePrice: HotDeskPrice},
		{Prefix: "B", Size: BetaZoneSize, Category: model.CategoryDedicatedDesk, BasePrice: DedicatedDeskPrice},
		{Prefix: "C", Size: CabinZoneSize, Category: model.CategoryPrivateCabin, BasePrice: PrivateCabinPrice},
	}
}

// Generate expands zones into the full unit list. Ids are the zone prefix
// plus a 1-based index zero-padded to two digits (A-01 .. A-12).
func Generate(zones []Zone) []model.Unit {
	var units []model.Unit
	for _, zone := range zones {
		for i := 1; i <= zone.Size; i++ {
			units = append(units, model.Unit{
				ID:        UnitID(zone.Prefix, i),
				Category:  zone.Category,
				BasePrice: zone.BasePrice,
			})
		}
	}
	return units
}

// Default returns the full reference catalog.
func Default() []model.Unit {
	return Generate(DefaultZones())
}

// UnitID formats a unit identifier from a zone prefix and 1-based index.
func UnitID(prefix string, index int) string {
	return fmt.Sprintf("%s-%02d", prefix, index)
}

// Index builds an id lookup over units.
func Index(units []model.Unit) map[string]model.Unit {
	byID := make(map[string]model.Unit, len(units))
	for _, unit := range units {
		byID[unit.ID] = unit
	}
	return byID
}
