// Package scene holds the supply-chain data model and the mutable state a
// visualization instance carries: facilities and routes as loaded, their
// projected world positions, the current view (zoom, pan, toggles) and the
// selection/hover/drag flags. Render-ready snapshots are derived from it; the
// render pipeline never mutates scene state.
package scene

import "chainviz/geo"

// Category classifies a facility in the supply chain. Unknown is a real
// variant, not an error: unrecognised input types map to it and get the
// default style.
type Category int

const (
	Farm Category = iota
	CollectionCenter
	ProcessingPlant
	Distributor
	Retail
	Unknown
)

// String returns the wire/config name of the category.
func (c Category) String() string {
	switch c {
	case Farm:
		return "farm"
	case CollectionCenter:
		return "collection_center"
	case ProcessingPlant:
		return "processing_plant"
	case Distributor:
		return "distributor"
	case Retail:
		return "retail"
	default:
		return "unknown"
	}
}

// ParseCategory maps an input type string to a Category. Anything
// unrecognised becomes Unknown.
func ParseCategory(s string) Category {
	switch s {
	case "farm":
		return Farm
	case "collection_center":
		return CollectionCenter
	case "processing_plant":
		return ProcessingPlant
	case "distributor":
		return Distributor
	case "retail":
		return Retail
	default:
		return Unknown
	}
}

// Categories lists every variant in display order.
func Categories() []Category {
	return []Category{Farm, CollectionCenter, ProcessingPlant, Distributor, Retail, Unknown}
}

// Facility is one node of the network as loaded from input data. Immutable
// except that its projected position may be dragged in memory.
type Facility struct {
	ID         string
	Name       string
	Category   Category
	Position   geo.Point
	Capacity   float64
	Throughput float64
	Region     string
}

// Route is a directed edge between two facilities. A route referencing a
// facility id that does not exist is kept in the data but silently dropped
// when the drawable scene is derived.
type Route struct {
	ID          string
	From        string
	To          string
	DistanceKm  float64
	CostPerTrip float64
	VehicleType string
}
