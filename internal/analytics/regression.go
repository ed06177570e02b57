package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mlachapelle/creatorlens/internal/model"
)

// regressionSteps intervals produce regressionSteps+1 sample points.
const regressionSteps = 50

// RegressionInput is one creator's (totalViews, subscribers) observation.
type RegressionInput struct {
	TotalViews  float64
	Subscribers float64
}

// FitPowerLaw fits subscribers = a * totalViews^b by ordinary least squares
// on (log x, log y) and samples the fitted curve at 51 points spaced evenly
// in log space across the observed totalViews range. Predictions are
// clamped to a floor of 1 so the overlay never shows zero or negative
// subscriber counts.
//
// Observations with a non-positive coordinate are dropped. Fewer than two
// usable points, or a degenerate set where every x is identical, yields
// an empty line rather than an error: the overlay simply has nothing to draw.
func FitPowerLaw(points []RegressionInput) []model.RegressionPoint {
	var logX, logY []float64
	minX, maxX := math.Inf(1), math.Inf(-1)

	for _, p := range points {
		if p.TotalViews <= 0 || p.Subscribers <= 0 {
			continue
		}
		logX = append(logX, math.Log(p.TotalViews))
		logY = append(logY, math.Log(p.Subscribers))
		minX = math.Min(minX, p.TotalViews)
		maxX = math.Max(maxX, p.TotalViews)
	}

	if len(logX) < 2 || minX == maxX {
		return []model.RegressionPoint{}
	}

	intercept, slope := stat.LinearRegression(logX, logY, nil, false)
	a := math.Exp(intercept)
	b := slope

	logMin := math.Log(minX)
	logMax := math.Log(maxX)

	line := make([]model.RegressionPoint, 0, regressionSteps+1)
	for i := 0; i <= regressionSteps; i++ {
		x := math.Exp(logMin + (logMax-logMin)*float64(i)/regressionSteps)
		y := a * math.Pow(x, b)
		if y < 1 {
			y = 1
		}
		line = append(line, model.RegressionPoint{TotalViews: x, Subscribers: y})
	}
	return line
}
