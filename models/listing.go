package models

// Listing is one rental record: a row of the reference table, a scraped
// listing, or a manually entered one. Immutable once constructed.
type Listing struct {
	Location       string
	Latitude       float64
	Longitude      float64
	AreaSqft       int
	BHK            int
	AmenitiesScore int
	RentPrice      float64
}

// SessionStatus is the explicit lifecycle of one user session.
type SessionStatus int

const (
	// StatusEmpty is a fresh session: no URL, no scraped data, no analysis.
	StatusEmpty SessionStatus = iota
	// StatusAwaitingInput means a listing has been fetched but not analyzed yet.
	StatusAwaitingInput
	// StatusAnalyzed means the last analysis result is stored on the session.
	StatusAnalyzed
)

func (s SessionStatus) String() string {
	switch s {
	case StatusAwaitingInput:
		return "awaiting-input"
	case StatusAnalyzed:
		return "analyzed"
	default:
		return "empty"
	}
}

// SessionState is the single mutable record scoped to one user session.
// The active listing source is the scraped record while URL is non-empty;
// clearing the URL reverts to manual inputs without discarding Scraped.
type SessionState struct {
	Status SessionStatus

	URL        string
	Scraped    *Listing
	FetchError string

	Predicted float64
	Actual    float64
	Diff      float64
	Latitude  float64
	Longitude float64
}

// MarketSummary holds the stats computed over the reference table.
type MarketSummary struct {
	TotalListings int
	AverageRent   float64
	MinRent       float64
	MaxRent       float64
	ByLocation    map[string]int
}
