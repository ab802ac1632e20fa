// Package importer reads network data files into scene types. The input is a
// read-only snapshot from whatever fetched it; the importer tolerates missing
// optional fields and keeps routes with unresolvable endpoints in the data
// (the scene drops them at derive time).
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"chainviz/geo"
	"chainviz/scene"
)

type facilityRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Capacity   float64 `json:"capacity,omitempty"`
	Production float64 `json:"production,omitempty"`
	District   string  `json:"district,omitempty"`
}

type routeRecord struct {
	ID          string  `json:"id"`
	FromID      string  `json:"from_id"`
	ToID        string  `json:"to_id"`
	DistanceKm  float64 `json:"distance_km"`
	CostPerTrip float64 `json:"cost_per_trip"`
	VehicleType string  `json:"vehicle_type"`
}

type networkFile struct {
	Facilities []facilityRecord `json:"facilities"`
	Routes     []routeRecord    `json:"routes"`
}

// Parse decodes a network JSON document. Empty lists are valid input.
func Parse(data []byte) ([]scene.Facility, []scene.Route, error) {
	var nf networkFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, nil, fmt.Errorf("parse network data: %w", err)
	}

	facilities := make([]scene.Facility, 0, len(nf.Facilities))
	seen := make(map[string]bool, len(nf.Facilities))
	for _, r := range nf.Facilities {
		if r.ID == "" || seen[r.ID] {
			continue // unidentifiable or duplicate record
		}
		seen[r.ID] = true
		facilities = append(facilities, scene.Facility{
			ID:         r.ID,
			Name:       r.Name,
			Category:   scene.ParseCategory(r.Type),
			Position:   geo.Point{Lat: r.Lat, Lng: r.Lng},
			Capacity:   r.Capacity,
			Throughput: r.Production,
			Region:     r.District,
		})
	}

	routes := make([]scene.Route, 0, len(nf.Routes))
	for _, r := range nf.Routes {
		if r.ID == "" {
			continue
		}
		routes = append(routes, scene.Route{
			ID:          r.ID,
			From:        r.FromID,
			To:          r.ToID,
			DistanceKm:  r.DistanceKm,
			CostPerTrip: r.CostPerTrip,
			VehicleType: r.VehicleType,
		})
	}

	return facilities, routes, nil
}

// LoadFile reads and parses a network JSON file.
func LoadFile(path string) ([]scene.Facility, []scene.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read network data: %w", err)
	}
	return Parse(data)
}
