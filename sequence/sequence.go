// Package sequence generates arithmetic sequences and formats them for
// display. A sequence is defined by its first term a₁, its common
// difference d and a term count n; element i (0-indexed) equals a₁ + i·d.
package sequence

// MaxTerms bounds the number of terms a single request may produce.
const MaxTerms = 1000

// Request holds the three parameters of an arithmetic sequence.
type Request struct {
	FirstTerm        float64
	CommonDifference float64
	NumTerms         int
}

// Validation error kinds.
const (
	KindInvalidTermCount  = "invalid_term_count"
	KindTermCountTooLarge = "term_count_too_large"
)

// ValidationError reports why a request cannot be processed.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks that a request can be processed. Only the term count is
// constrained; the first term and the common difference accept any value.
func Validate(r Request) error {
	if r.NumTerms <= 0 {
		return &ValidationError{
			Kind:    KindInvalidTermCount,
			Message: "Number of terms must be a positive integer greater than 0.",
		}
	}
	if r.NumTerms > MaxTerms {
		return &ValidationError{
			Kind:    KindTermCountTooLarge,
			Message: "Number of terms cannot exceed 1000 for performance reasons.",
		}
	}
	return nil
}

// Generate produces the sequence terms. Returns nil when NumTerms <= 0;
// callers are expected to Validate first.
func Generate(r Request) []float64 {
	if r.NumTerms <= 0 {
		return nil
	}
	terms := make([]float64, r.NumTerms)
	for i := range terms {
		terms[i] = r.FirstTerm + float64(i)*r.CommonDifference
	}
	return terms
}

// Stats are the summary values shown alongside a generated sequence.
type Stats struct {
	Sum     float64
	Min     float64
	Max     float64
	Average float64
	Last    float64
}

// Summarize computes the stats block for a sequence. An empty sequence
// yields the zero value.
func Summarize(terms []float64) Stats {
	if len(terms) == 0 {
		return Stats{}
	}
	st := Stats{Min: terms[0], Max: terms[0], Last: terms[len(terms)-1]}
	for _, t := range terms {
		st.Sum += t
		if t < st.Min {
			st.Min = t
		}
		if t > st.Max {
			st.Max = t
		}
	}
	st.Average = st.Sum / float64(len(terms))
	return st
}
