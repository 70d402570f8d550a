package services

import (
	"math"

	"rent-analyzer/models"
	"rent-analyzer/utils"
)

// MarketService computes summary stats over the reference table, shown on
// the page beside the verdict.
type MarketService struct {
	logger *utils.Logger
}

func NewMarketService(logger *utils.Logger) *MarketService {
	return &MarketService{logger: logger}
}

// Summarize aggregates rent stats and per-location counts. Listings without
// a positive rent are excluded from the price stats.
func (s *MarketService) Summarize(listings []*models.Listing) *models.MarketSummary {
	summary := &models.MarketSummary{
		ByLocation: make(map[string]int),
	}

	if len(listings) == 0 {
		return summary
	}

	summary.TotalListings = len(listings)

	var priced int
	var total float64
	for _, l := range listings {
		if l.Location != "" {
			summary.ByLocation[l.Location]++
		}
		if l.RentPrice <= 0 {
			continue
		}
		if priced == 0 || l.RentPrice < summary.MinRent {
			summary.MinRent = l.RentPrice
		}
		if priced == 0 || l.RentPrice > summary.MaxRent {
			summary.MaxRent = l.RentPrice
		}
		total += l.RentPrice
		priced++
	}

	if priced > 0 {
		summary.AverageRent = round2(total / float64(priced))
	}

	s.logger.Debug("[market] Summary over %d listings: avg %.2f, min %.2f, max %.2f",
		summary.TotalListings, summary.AverageRent, summary.MinRent, summary.MaxRent)
	return summary
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
