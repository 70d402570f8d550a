package server

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gorilla/mux"

	"rent-analyzer/config"
	"rent-analyzer/models"
	"rent-analyzer/scraper"
	"rent-analyzer/services"
	"rent-analyzer/utils"
)

//go:embed templates/index.html
var templatesFS embed.FS

// Server wires the immutable startup context (reference table, trained
// estimator, market summary) to the HTTP handlers. Everything here is
// read-only after New except the session store.
type Server struct {
	cfg       *config.Config
	logger    *utils.Logger
	table     []*models.Listing
	locations []string
	summary   *models.MarketSummary
	estimator *services.Estimator
	scraper   *scraper.Scraper
	sessions  *services.SessionManager
	tmpl      *template.Template
}

// New builds a Server over an already-loaded table and trained estimator.
func New(
	cfg *config.Config,
	logger *utils.Logger,
	table []*models.Listing,
	summary *models.MarketSummary,
	estimator *services.Estimator,
	sc *scraper.Scraper,
	sessions *services.SessionManager,
) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("server: parse templates: %w", err)
	}

	return &Server{
		cfg:       cfg,
		logger:    logger,
		table:     table,
		locations: distinctLocations(table),
		summary:   summary,
		estimator: estimator,
		scraper:   sc,
		sessions:  sessions,
		tmpl:      tmpl,
	}, nil
}

// Router returns the route table for the application.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/fetch", s.handleFetch).Methods("POST")
	r.HandleFunc("/clear", s.handleClear).Methods("POST")
	r.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	r.HandleFunc("/api/markers", s.handleMarkers).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	return r
}

// distinctLocations keeps the table's order, first occurrence wins.
func distinctLocations(table []*models.Listing) []string {
	seen := make(map[string]struct{}, len(table))
	var out []string
	for _, l := range table {
		if l.Location == "" {
			continue
		}
		if _, ok := seen[l.Location]; ok {
			continue
		}
		seen[l.Location] = struct{}{}
		out = append(out, l.Location)
	}
	return out
}
