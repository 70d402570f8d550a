package services

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"rent-analyzer/models"
	"rent-analyzer/utils"
)

// ErrNotTrained is returned by Estimate before Train has succeeded. Startup
// trains unconditionally, so regular request handling never sees it.
var ErrNotTrained = errors.New("estimator: model not trained")

// Estimator maps (area_sqft, bhk, amenities_score) to a fair rent price.
// The fit is an ordinary least-squares regression over the whole reference
// table: no train/test split, no validation. The reference data is far too
// small for either to be meaningful.
type Estimator struct {
	logger *utils.Logger
	coef   *mat.VecDense // intercept, area, bhk, amenities
}

func NewEstimator(logger *utils.Logger) *Estimator {
	return &Estimator{logger: logger}
}

// Train fits the model on the given listings. Deterministic: the same table
// always produces the same coefficients.
func (e *Estimator) Train(listings []*models.Listing) error {
	const nCoef = 4
	if len(listings) < nCoef {
		return fmt.Errorf("estimator: need at least %d listings, got %d", nCoef, len(listings))
	}

	a := mat.NewDense(len(listings), nCoef, nil)
	b := mat.NewVecDense(len(listings), nil)
	for i, l := range listings {
		a.SetRow(i, []float64{1, float64(l.AreaSqft), float64(l.BHK), float64(l.AmenitiesScore)})
		b.SetVec(i, l.RentPrice)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return fmt.Errorf("estimator: least-squares fit: %w", err)
		}
		e.logger.Warn("[estimator] Training data is ill-conditioned: %v", err)
	}

	e.coef = &coef
	e.logger.Info("[estimator] Trained on %d listings: rent = %.2f + %.2f*area + %.2f*bhk + %.2f*amenities",
		len(listings), coef.AtVec(0), coef.AtVec(1), coef.AtVec(2), coef.AtVec(3))
	return nil
}

// Estimate predicts a fair rent for a single listing. Identical inputs on
// the same trained model return identical values.
func (e *Estimator) Estimate(areaSqft, bhk, amenitiesScore int) (float64, error) {
	if e.coef == nil {
		return 0, ErrNotTrained
	}

	x := mat.NewVecDense(4, []float64{1, float64(areaSqft), float64(bhk), float64(amenitiesScore)})
	return mat.Dot(e.coef, x), nil
}
