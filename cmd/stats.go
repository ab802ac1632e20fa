package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"chainviz/scene"
)

func statsCmd() *cobra.Command {
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the network without rendering it",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := buildModel()
			if err != nil {
				return err
			}
			banner("network summary")

			s := m.Stats()
			fmt.Printf("  Facilities:        %d\n", s.Nodes)
			fmt.Printf("  Routes drawn:      %d\n", s.Edges)
			if dangling := len(m.Routes()) - s.Edges; dangling > 0 {
				bad.Printf("  Dangling routes:   %d\n", dangling)
			}
			fmt.Printf("  Avg distance:      %.1f km\n", s.AvgDistanceKm)
			fmt.Printf("  Total trip cost:   %.0f\n", s.TotalCostPerTrip)
			fmt.Printf("  Edge density:      %.2f routes/facility\n", s.EdgeDensity)

			if byCategory {
				fmt.Println()
				printCategoryTable(m)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "break facilities down by category")
	return cmd
}

func printCategoryTable(m *scene.Model) {
	counts := make(map[scene.Category]int)
	capacity := make(map[scene.Category]float64)
	for _, f := range m.Facilities() {
		counts[f.Category]++
		capacity[f.Category] += f.Capacity
	}

	cats := make([]scene.Category, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			c.String(),
			fmt.Sprintf("%d", counts[c]),
			fmt.Sprintf("%.0f", capacity[c]),
		})
	}
	table([]string{"Category", "Count", "Capacity"}, rows)
}
