package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgHiCyan, color.Bold)
	subtle  = color.New(color.FgHiBlack)
	good    = color.New(color.FgGreen)
	bad     = color.New(color.FgRed)
)

// banner prints a section header for command output.
func banner(subtitle string) {
	fmt.Printf("%s — %s\n\n", heading.Sprint("chainviz"), subtitle)
}

// table prints a simple aligned table.
func table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	subtle.Println(headerLine)
	subtle.Println(sepLine)

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println(line)
	}
}
