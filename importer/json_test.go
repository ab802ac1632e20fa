package importer

import (
	"testing"

	"chainviz/scene"
)

const sample = `{
  "facilities": [
    {"id": "f1", "name": "Hosur Farm", "type": "farm", "lat": 12.73, "lng": 77.83, "capacity": 120, "production": 90, "district": "Krishnagiri"},
    {"id": "p1", "name": "Peenya Plant", "type": "processing_plant", "lat": 13.03, "lng": 77.52},
    {"id": "x1", "name": "Depot", "type": "warehouse", "lat": 12.9, "lng": 77.6}
  ],
  "routes": [
    {"id": "r1", "from_id": "f1", "to_id": "p1", "distance_km": 42.5, "cost_per_trip": 1800, "vehicle_type": "truck"},
    {"id": "r2", "from_id": "f1", "to_id": "ghost", "distance_km": 10, "cost_per_trip": 400, "vehicle_type": "van"}
  ]
}`

func TestParse(t *testing.T) {
	facilities, routes, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(facilities) != 3 {
		t.Fatalf("facilities = %d, want 3", len(facilities))
	}
	if len(routes) != 2 {
		t.Fatalf("routes = %d, want 2 (dangling refs kept in data)", len(routes))
	}

	f := facilities[0]
	if f.ID != "f1" || f.Name != "Hosur Farm" || f.Category != scene.Farm {
		t.Errorf("facility f1 = %+v", f)
	}
	if f.Position.Lat != 12.73 || f.Position.Lng != 77.83 {
		t.Errorf("f1 position = %+v", f.Position)
	}
	if f.Capacity != 120 || f.Throughput != 90 || f.Region != "Krishnagiri" {
		t.Errorf("f1 optional fields = %+v", f)
	}

	// Optional fields absent → zero values.
	if facilities[1].Capacity != 0 || facilities[1].Region != "" {
		t.Errorf("p1 should have zero optional fields: %+v", facilities[1])
	}

	// Unrecognised type maps to Unknown, not an error.
	if facilities[2].Category != scene.Unknown {
		t.Errorf("x1 category = %v, want Unknown", facilities[2].Category)
	}

	r := routes[0]
	if r.From != "f1" || r.To != "p1" || r.DistanceKm != 42.5 || r.CostPerTrip != 1800 || r.VehicleType != "truck" {
		t.Errorf("route r1 = %+v", r)
	}
}

func TestParseEmpty(t *testing.T) {
	facilities, routes, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(facilities) != 0 || len(routes) != 0 {
		t.Errorf("empty document should parse to empty sets")
	}
}

func TestParseSkipsBadRecords(t *testing.T) {
	doc := `{
	  "facilities": [
	    {"id": "", "name": "No ID", "type": "farm", "lat": 1, "lng": 1},
	    {"id": "a", "name": "First", "type": "farm", "lat": 1, "lng": 1},
	    {"id": "a", "name": "Duplicate", "type": "retail", "lat": 2, "lng": 2}
	  ],
	  "routes": [{"id": "", "from_id": "a", "to_id": "a"}]
	}`
	facilities, routes, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(facilities) != 1 || facilities[0].Name != "First" {
		t.Errorf("facilities = %+v, want only First", facilities)
	}
	if len(routes) != 0 {
		t.Errorf("routes without ids should be skipped, got %+v", routes)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, _, err := Parse([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, _, err := LoadFile("/nonexistent/network.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
