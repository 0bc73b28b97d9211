package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"arithmo/sequence"
)

type sequenceHandler struct {
	svc *Service
}

type generatePayload struct {
	FirstTerm        float64 `json:"first_term"`
	CommonDifference float64 `json:"common_difference"`
	NumTerms         int     `json:"num_terms"`
}

type statsBody struct {
	Sum     float64 `json:"sum"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Last    float64 `json:"last"`
}

type generateResponse struct {
	Formula string    `json:"formula"`
	Terms   []float64 `json:"terms"`
	Stats   statsBody `json:"stats"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func NewSequenceHandler(svc *Service) http.Handler {
	return &sequenceHandler{svc: svc}
}

func (h *sequenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleGenerate(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *sequenceHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	result, err := h.svc.GenerateSequence(sequence.Request{
		FirstTerm:        payload.FirstTerm,
		CommonDifference: payload.CommonDifference,
		NumTerms:         payload.NumTerms,
	})
	if err != nil {
		var verr *sequence.ValidationError
		if !errors.As(err, &verr) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error: errorBody{Kind: verr.Kind, Message: verr.Message},
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(generateResponse{
		Formula: result.Formula,
		Terms:   result.Terms,
		Stats: statsBody{
			Sum:     result.Stats.Sum,
			Min:     result.Stats.Min,
			Max:     result.Stats.Max,
			Average: result.Stats.Average,
			Last:    result.Stats.Last,
		},
	})
}
