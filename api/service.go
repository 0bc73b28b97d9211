package api

import "arithmo/sequence"

// Service runs the validate-then-generate pipeline shared by the JSON API,
// the web UI and the CLI.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// GenerateSequence validates the request and, when valid, produces the
// terms and their summary statistics. On validation failure the returned
// error is a *sequence.ValidationError.
func (s *Service) GenerateSequence(r sequence.Request) (Result, error) {
	if err := sequence.Validate(r); err != nil {
		return Result{}, err
	}
	terms := sequence.Generate(r)
	return Result{
		Request: r,
		Formula: r.Formula(),
		Terms:   terms,
		Stats:   sequence.Summarize(terms),
	}, nil
}
