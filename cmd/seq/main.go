package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"arithmo/api"
	"arithmo/sequence"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func main() {
	first := flag.Float64("first", 1, "first term (a1)")
	diff := flag.Float64("diff", 1, "common difference (d)")
	terms := flag.Int("terms", 10, "number of terms (1-1000)")
	showTable := flag.Bool("table", false, "print the per-term breakdown table")
	flag.Parse()

	req := sequence.Request{
		FirstTerm:        *first,
		CommonDifference: *diff,
		NumTerms:         *terms,
	}
	result, err := api.NewService().GenerateSequence(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(headingStyle.Render("Arithmetic Sequence"))
	fmt.Println(mutedStyle.Render(sequence.Formula()))
	fmt.Println(mutedStyle.Render(result.Formula))
	fmt.Println()

	fmt.Println(renderListing(sequence.MakeListing(result.Terms)))
	fmt.Println()

	st := result.Stats
	fmt.Printf("Sum: %s\n", sequence.FormatStat(st.Sum))
	if len(result.Terms) > 1 {
		fmt.Printf("Range: %s to %s\n", sequence.FormatStat(st.Min), sequence.FormatStat(st.Max))
	}
	fmt.Printf("Average: %s\n", sequence.FormatStat(st.Average))
	fmt.Printf("Last term: %s\n", sequence.FormatStat(st.Last))

	if *showTable {
		fmt.Println()
		fmt.Println(renderTable(req, result.Terms))
	}
}

// renderListing prints a listing the way the web view does: the full run of
// terms, or the head and tail separated by an ellipsis line.
func renderListing(l sequence.Listing) string {
	if !l.Truncated {
		return l.Full
	}
	return fmt.Sprintf("First %d terms: %s\n…\nLast %d terms: %s",
		sequence.EdgeTerms, l.Head, sequence.EdgeTerms, l.Tail)
}

func renderTable(req sequence.Request, terms []float64) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Position (n)", "Term Value (aₙ)", "Calculation")
	for _, row := range sequence.TableRows(req, terms) {
		t.Row(strconv.Itoa(row.Position), row.Value, row.Calculation)
	}
	return t.Render()
}
