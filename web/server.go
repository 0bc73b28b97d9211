package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"arithmo/api"
	"arithmo/sequence"
)

//go:embed templates/*.tmpl templates/styles.css
var templatesFS embed.FS

// FormDefaults pre-fill the input fields on the form page.
type FormDefaults struct {
	FirstTerm        float64
	CommonDifference float64
	NumTerms         int
}

type Server struct {
	templates *template.Template
	svc       *api.Service
	css       template.CSS
	defaults  FormDefaults
}

// FormView renders the input form. The field values are kept as the raw
// submitted strings so invalid input survives a failed round trip.
type FormView struct {
	CSS              template.CSS
	Error            string
	FirstTerm        string
	CommonDifference string
	NumTerms         string
	ShowTable        bool
}

type Metric struct {
	Label string
	Value string
}

type StatRow struct {
	Label string
	Value string
}

type ResultView struct {
	CSS         template.CSS
	Formula     string
	UserFormula string
	Metrics     []Metric
	Listing     sequence.Listing
	EdgeTerms   int
	Stats       []StatRow
	Rows        []sequence.TableRow
	ShowTable   bool
}

func NewServer(svc *api.Service, defaults FormDefaults) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	rawCSS, err := templatesFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, err
	}
	return &Server{
		templates: tmpl,
		svc:       svc,
		css:       template.CSS(rawCSS),
		defaults:  defaults,
	}, nil
}

// HandleIndex serves the input form at the site root.
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.renderForm(w, http.StatusOK, FormView{
		CSS:              s.css,
		FirstTerm:        sequence.FormatTerm(s.defaults.FirstTerm),
		CommonDifference: sequence.FormatTerm(s.defaults.CommonDifference),
		NumTerms:         strconv.Itoa(s.defaults.NumTerms),
	})
}

// HandleGenerate serves the form POST. A plain GET redirects back to the
// form, matching the root redirects in cmd/web.
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case http.MethodPost:
		s.handleGeneratePost(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGeneratePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	view := FormView{
		CSS:              s.css,
		FirstTerm:        strings.TrimSpace(r.FormValue("first_term")),
		CommonDifference: strings.TrimSpace(r.FormValue("common_difference")),
		NumTerms:         strings.TrimSpace(r.FormValue("num_terms")),
		ShowTable:        r.FormValue("show_table") != "",
	}
	req, err := parseRequest(view)
	if err != nil {
		view.Error = err.Error()
		s.renderForm(w, http.StatusUnprocessableEntity, view)
		return
	}
	result, err := s.svc.GenerateSequence(req)
	if err != nil {
		view.Error = err.Error()
		s.renderForm(w, http.StatusUnprocessableEntity, view)
		return
	}
	s.renderResult(w, result, view.ShowTable)
}

// parseRequest converts the submitted form fields into a kernel request.
// Parse failures come back as the same user-facing message shape the
// kernel's validation produces.
func parseRequest(view FormView) (sequence.Request, error) {
	firstTerm, err := strconv.ParseFloat(view.FirstTerm, 64)
	if err != nil {
		return sequence.Request{}, errors.New("First term must be a number.")
	}
	commonDiff, err := strconv.ParseFloat(view.CommonDifference, 64)
	if err != nil {
		return sequence.Request{}, errors.New("Common difference must be a number.")
	}
	numTerms, err := strconv.Atoi(view.NumTerms)
	if err != nil {
		return sequence.Request{}, errors.New("Number of terms must be a whole number.")
	}
	return sequence.Request{
		FirstTerm:        firstTerm,
		CommonDifference: commonDiff,
		NumTerms:         numTerms,
	}, nil
}

func (s *Server) renderForm(w http.ResponseWriter, status int, view FormView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "form", view); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) renderResult(w http.ResponseWriter, result api.Result, showTable bool) {
	req := result.Request
	view := ResultView{
		CSS:         s.css,
		Formula:     sequence.Formula(),
		UserFormula: result.Formula,
		Metrics: []Metric{
			{Label: "First Term", Value: sequence.FormatTerm(req.FirstTerm)},
			{Label: "Common Difference", Value: sequence.FormatTerm(req.CommonDifference)},
			{Label: "Number of Terms", Value: strconv.Itoa(req.NumTerms)},
		},
		Listing:   sequence.MakeListing(result.Terms),
		EdgeTerms: sequence.EdgeTerms,
		ShowTable: showTable,
	}
	view.Stats = append(view.Stats, StatRow{
		Label: "Sum of sequence",
		Value: sequence.FormatStat(result.Stats.Sum),
	})
	if len(result.Terms) > 1 {
		view.Stats = append(view.Stats, StatRow{
			Label: "Range",
			Value: sequence.FormatStat(result.Stats.Min) + " to " + sequence.FormatStat(result.Stats.Max),
		})
	}
	view.Stats = append(view.Stats,
		StatRow{Label: "Average", Value: sequence.FormatStat(result.Stats.Average)},
		StatRow{Label: "Last term", Value: sequence.FormatStat(result.Stats.Last)},
	)
	if showTable {
		view.Rows = sequence.TableRows(req, result.Terms)
	}
	if err := s.templates.ExecuteTemplate(w, "result", view); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
