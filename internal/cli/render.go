package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	angles "github.com/rmera/bondangles"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	angleStyle  = cellStyle.Align(lipgloss.Right)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF005F")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true)
)

// renderTable writes T as a bordered table, with angles printed with prec decimals.
func renderTable(w io.Writer, T *angles.AngleTable, prec int) error {
	rows := make([][]string, len(T.Rows))
	for i, r := range T.Rows {
		rows[i] = []string{
			fmt.Sprintf("%d - %d - %d", r.Triplet[0], r.Triplet[1], r.Triplet[2]),
			strconv.FormatFloat(r.Angle, 'f', prec, 64),
			fmt.Sprintf("%d - %d", r.Bonds[0], r.Bonds[1]),
		}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Triplet A-B-C", "Angle", "Bond Pair B1 - B2").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return angleStyle
			default:
				return cellStyle
			}
		})
	s := T.Summary()
	summary := fmt.Sprintf("%d angles, mean %.*f, min %.*f, max %.*f", s.N, prec, s.Mean, prec, s.Min, prec, s.Max)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", titleStyle.Render(T.Title), t.Render(), hintStyle.Render(summary))
	return err
}

// renderFailure writes the error for one particle.
func renderFailure(w io.Writer, particle int, err error) error {
	_, err2 := fmt.Fprintf(w, "%s %s\n", errorStyle.Render(fmt.Sprintf("Particle %d:", particle)), err.Error())
	return err2
}
