package sequence

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display thresholds for sequence listings.
const (
	FullListingMax = 20 // listings up to this length are shown in full
	EdgeTerms      = 10 // terms kept from each end of a truncated listing
)

// FormatTerm renders a term the way the UI shows it: integral values as a
// plain integer, everything else to two decimal places.
func FormatTerm(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatStat renders a summary statistic, always to two decimal places.
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Formula is the general closed form of an arithmetic sequence.
func Formula() string { return "aₙ = a₁ + (n−1) × d" }

// Formula returns the closed form with this request's values substituted,
// e.g. "aₙ = 2 + (n−1) × 3".
func (r Request) Formula() string {
	return fmt.Sprintf("aₙ = %s + (n−1) × %s",
		FormatTerm(r.FirstTerm), FormatTerm(r.CommonDifference))
}

// Listing is a sequence formatted for display. Sequences up to
// FullListingMax terms are joined in full; longer ones keep only the first
// and last EdgeTerms terms.
type Listing struct {
	Full      string
	Head      string
	Tail      string
	Truncated bool
}

// MakeListing formats terms for display.
func MakeListing(terms []float64) Listing {
	if len(terms) <= FullListingMax {
		return Listing{Full: joinTerms(terms)}
	}
	return Listing{
		Head:      joinTerms(terms[:EdgeTerms]),
		Tail:      joinTerms(terms[len(terms)-EdgeTerms:]),
		Truncated: true,
	}
}

func joinTerms(terms []float64) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = FormatTerm(t)
	}
	return strings.Join(parts, ", ")
}

// TableRow is one line of the detailed breakdown table.
type TableRow struct {
	Position    int
	Value       string
	Calculation string
}

// TableRows builds the per-position breakdown: the 1-based position, the
// formatted term and the expression that produced it, e.g. "2 + (3) × 3 = 11".
func TableRows(r Request, terms []float64) []TableRow {
	rows := make([]TableRow, len(terms))
	for i, t := range terms {
		rows[i] = TableRow{
			Position: i + 1,
			Value:    FormatTerm(t),
			Calculation: fmt.Sprintf("%s + (%d) × %s = %s",
				FormatTerm(r.FirstTerm), i, FormatTerm(r.CommonDifference), FormatTerm(t)),
		}
	}
	return rows
}
