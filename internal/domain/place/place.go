package place

import "github.com/y-smart/service-tripplan/internal/domain/geo"

// Place is one place-search result: name, human-readable address and an
// optional provider category.
type Place struct {
	Name     string         `json:"name"`
	Address  string         `json:"address,omitempty"`
	Category string         `json:"category,omitempty"`
	Coord    geo.Coordinate `json:"coord"`
}
