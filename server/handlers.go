package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"rent-analyzer/models"
	"rent-analyzer/services"
)

const sessionCookie = "rent_session"

// Default map center when no analysis has run yet (central Mumbai).
const (
	defaultLatitude  = 19.1
	defaultLongitude = 72.8
)

type pageData struct {
	State        *models.SessionState
	Locations    []string
	Summary      *models.MarketSummary
	Analyzed     bool
	URLActive    bool
	VerdictText  string
	VerdictClass string
}

// session returns the caller's session, creating one (and setting the
// cookie) on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, *models.SessionState) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if state := s.sessions.Get(c.Value); state != nil {
			return c.Value, state
		}
	}

	token, state := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return token, state
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, state := s.session(w, r)

	data := pageData{
		State:     state,
		Locations: s.locations,
		Summary:   s.summary,
		Analyzed:  state.Status == models.StatusAnalyzed,
		URLActive: state.URL != "",
	}

	if data.Analyzed {
		verdict, magnitude := services.Classify(state.Predicted, state.Actual)
		switch verdict {
		case services.VerdictFair:
			data.VerdictText = "Verdict: FAIRLY PRICED"
			data.VerdictClass = "fair"
		case services.VerdictOverpriced:
			data.VerdictText = fmt.Sprintf("Verdict: OVERPRICED by Rs. %.0f", magnitude)
			data.VerdictClass = "over"
		case services.VerdictUnderpriced:
			data.VerdictText = fmt.Sprintf("Verdict: UNDERPRICED by Rs. %.0f", magnitude)
			data.VerdictClass = "under"
		}
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("[server] Render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleFetch runs when the URL form is submitted. A URL identical to the
// stored one is a no-op; an empty one clears the URL. A failed fetch leaves
// the session unchanged apart from the surfaced error message.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	token, state := s.session(w, r)
	url := strings.TrimSpace(r.FormValue("url"))

	switch {
	case url == "":
		s.sessions.ClearURL(token)
	case url != state.URL:
		listing, err := s.scraper.Fetch(r.Context(), url)
		if err != nil {
			s.logger.Warn("[server] Listing fetch failed: %v", err)
			s.sessions.ApplyFetchError(token, fmt.Sprintf("Error scraping URL: %v", err))
		} else {
			s.sessions.ApplyFetch(token, url, listing)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	token, _ := s.session(w, r)
	s.sessions.ClearURL(token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAnalyze reads the active listing (scraped while a URL is set,
// manual form inputs otherwise), estimates a fair rent and stores the
// outcome on the session.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	token, state := s.session(w, r)

	listing := state.Scraped
	if state.URL == "" || listing == nil {
		listing = s.manualListing(r)
	}

	predicted, err := s.estimator.Estimate(listing.AreaSqft, listing.BHK, listing.AmenitiesScore)
	if err != nil {
		s.logger.Error("[server] Estimate failed: %v", err)
		http.Error(w, "analysis unavailable", http.StatusInternalServerError)
		return
	}

	s.sessions.ApplyAnalysis(token, predicted, listing.RentPrice, listing.Latitude, listing.Longitude)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// manualListing builds a listing from the form inputs, falling back to the
// form defaults on unparseable values. Coordinates come from the reference
// row matching the chosen location.
func (s *Server) manualListing(r *http.Request) *models.Listing {
	location := strings.TrimSpace(r.FormValue("location"))

	latitude, longitude := defaultLatitude, defaultLongitude
	for _, ref := range s.table {
		if ref.Location == location {
			latitude, longitude = ref.Latitude, ref.Longitude
			break
		}
	}

	return &models.Listing{
		Location:       location,
		Latitude:       latitude,
		Longitude:      longitude,
		AreaSqft:       formInt(r, "area", 800),
		BHK:            formInt(r, "bhk", 2),
		AmenitiesScore: formInt(r, "amenities", 8),
		RentPrice:      formFloat(r, "price", 50000),
	}
}

type markerJSON struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RentPrice float64 `json:"rent_price"`
}

type centerJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type markersResponse struct {
	Center  centerJSON   `json:"center"`
	Markers []markerJSON `json:"markers"`
}

// handleMarkers feeds the map: one marker per reference row, centered on
// the analyzed listing when there is one.
func (s *Server) handleMarkers(w http.ResponseWriter, r *http.Request) {
	resp := markersResponse{
		Center:  centerJSON{Latitude: defaultLatitude, Longitude: defaultLongitude},
		Markers: make([]markerJSON, 0, len(s.table)),
	}

	if c, err := r.Cookie(sessionCookie); err == nil {
		if state := s.sessions.Get(c.Value); state != nil && state.Status == models.StatusAnalyzed {
			resp.Center = centerJSON{Latitude: state.Latitude, Longitude: state.Longitude}
		}
	}

	for _, l := range s.table {
		resp.Markers = append(resp.Markers, markerJSON{
			Location:  l.Location,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			RentPrice: l.RentPrice,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("[server] Marker encode failed: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func formInt(r *http.Request, name string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(name))); err == nil {
		return n
	}
	return fallback
}

func formFloat(r *http.Request, name string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name)), 64); err == nil {
		return f
	}
	return fallback
}
