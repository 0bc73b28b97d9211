package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantKind string
	}{
		{"zero terms", Request{NumTerms: 0}, KindInvalidTermCount},
		{"negative terms", Request{FirstTerm: 3, CommonDifference: 2, NumTerms: -5}, KindInvalidTermCount},
		{"one over the cap", Request{NumTerms: 1001}, KindTermCountTooLarge},
		{"far over the cap", Request{NumTerms: 50000}, KindTermCountTooLarge},
		{"single term", Request{NumTerms: 1}, ""},
		{"exactly at the cap", Request{NumTerms: 1000}, ""},
		{"negative first term", Request{FirstTerm: -10, CommonDifference: -3, NumTerms: 5}, ""},
		{"fractional inputs", Request{FirstTerm: 1.5, CommonDifference: 0.5, NumTerms: 3}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

func TestValidateMessages(t *testing.T) {
	err := Validate(Request{NumTerms: 0})
	require.Error(t, err)
	assert.Equal(t, "Number of terms must be a positive integer greater than 0.", err.Error())

	err = Validate(Request{NumTerms: 1001})
	require.Error(t, err)
	assert.Equal(t, "Number of terms cannot exceed 1000 for performance reasons.", err.Error())
}

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []float64
	}{
		{"increasing", Request{FirstTerm: 2, CommonDifference: 3, NumTerms: 5}, []float64{2, 5, 8, 11, 14}},
		{"decreasing", Request{FirstTerm: 10, CommonDifference: -3, NumTerms: 5}, []float64{10, 7, 4, 1, -2}},
		{"fractional", Request{FirstTerm: 1.5, CommonDifference: 0.5, NumTerms: 3}, []float64{1.5, 2.0, 2.5}},
		{"constant", Request{FirstTerm: 7, CommonDifference: 0, NumTerms: 4}, []float64{7, 7, 7, 7}},
		{"single term", Request{FirstTerm: -1.25, CommonDifference: 99, NumTerms: 1}, []float64{-1.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.req))
		})
	}
}

func TestGenerateClosedForm(t *testing.T) {
	req := Request{FirstTerm: -4.5, CommonDifference: 1.25, NumTerms: 1000}
	terms := Generate(req)
	require.Len(t, terms, 1000)
	for i, got := range terms {
		want := req.FirstTerm + float64(i)*req.CommonDifference
		require.Equal(t, want, got, "term %d", i)
	}
}

func TestGenerateMonotonicity(t *testing.T) {
	increasing := Generate(Request{FirstTerm: 0, CommonDifference: 2.5, NumTerms: 50})
	for i := 1; i < len(increasing); i++ {
		require.Greater(t, increasing[i], increasing[i-1])
	}

	decreasing := Generate(Request{FirstTerm: 0, CommonDifference: -0.5, NumTerms: 50})
	for i := 1; i < len(decreasing); i++ {
		require.Less(t, decreasing[i], decreasing[i-1])
	}
}

func TestGenerateIsPure(t *testing.T) {
	req := Request{FirstTerm: 3.25, CommonDifference: -0.75, NumTerms: 17}
	assert.Equal(t, Generate(req), Generate(req))
}

func TestGenerateInvalidCount(t *testing.T) {
	assert.Nil(t, Generate(Request{FirstTerm: 1, CommonDifference: 1, NumTerms: 0}))
	assert.Nil(t, Generate(Request{FirstTerm: 1, CommonDifference: 1, NumTerms: -3}))
}

func TestSummarize(t *testing.T) {
	st := Summarize(Generate(Request{FirstTerm: 2, CommonDifference: 3, NumTerms: 5}))
	assert.Equal(t, 40.0, st.Sum)
	assert.Equal(t, 8.0, st.Average)
	assert.Equal(t, 14.0, st.Last)
	assert.Equal(t, 2.0, st.Min)
	assert.Equal(t, 14.0, st.Max)

	st = Summarize(Generate(Request{FirstTerm: 10, CommonDifference: -3, NumTerms: 5}))
	assert.Equal(t, -2.0, st.Min)
	assert.Equal(t, 10.0, st.Max)
	assert.Equal(t, -2.0, st.Last)

	assert.Equal(t, Stats{}, Summarize(nil))
}

func TestValidationErrorUnwrapping(t *testing.T) {
	err := Validate(Request{NumTerms: -1})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
