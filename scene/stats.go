package scene

// Stats summarises the network for surrounding panels. Only routes with two
// resolvable endpoints count as edges, matching what is actually drawn.
type Stats struct {
	Nodes            int
	Edges            int
	AvgDistanceKm    float64
	TotalCostPerTrip float64
	EdgeDensity      float64 // edges per node
}

// Stats computes the current summary.
func (m *Model) Stats() Stats {
	s := Stats{Nodes: len(m.facilities)}

	var totalDist float64
	for _, r := range m.routes {
		if _, ok := m.index[r.From]; !ok {
			continue
		}
		if _, ok := m.index[r.To]; !ok {
			continue
		}
		s.Edges++
		totalDist += r.DistanceKm
		s.TotalCostPerTrip += r.CostPerTrip
	}
	if s.Edges > 0 {
		s.AvgDistanceKm = totalDist / float64(s.Edges)
	}
	if s.Nodes > 0 {
		s.EdgeDensity = float64(s.Edges) / float64(s.Nodes)
	}
	return s
}
