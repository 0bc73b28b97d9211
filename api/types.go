package api

import "arithmo/sequence"

// Result is the outcome of a successful generation: the echoed request, the
// instantiated formula, the terms and their summary statistics.
type Result struct {
	Request sequence.Request
	Formula string
	Terms   []float64
	Stats   sequence.Stats
}
