// Package scoring implements the attrition risk heuristic.
//
// All functions are pure: they read only their argument and are safe for
// concurrent use without coordination.
package scoring

import (
	"math"

	"github.com/terra-clan/attrition-engine/internal/models"
)

const (
	baseRisk       = 50
	minProbability = 5
	maxProbability = 95

	// HighRiskThreshold is the lowest probability labelled high risk.
	HighRiskThreshold = 50
)

// Predict scores attrs and attaches the factor and recommendation lists.
func Predict(attrs models.EmployeeAttributes) models.PredictionResult {
	probability, level := Score(attrs)
	return models.PredictionResult{
		Probability:     probability,
		RiskLevel:       level,
		Factors:         AnalyzeFactors(attrs),
		Recommendations: Recommend(attrs),
	}
}

// Score returns the clamped attrition probability (5-95, one decimal) and its risk level.
func Score(attrs models.EmployeeAttributes) (float64, models.RiskLevel) {
	probability := clamp(float64(RawScore(attrs)), minProbability, maxProbability)
	probability = math.Round(probability*10) / 10
	return probability, levelFor(probability)
}

// RawScore returns the unclamped additive risk score.
func RawScore(attrs models.EmployeeAttributes) int {
	risk := baseRisk

	if attrs.Overtime {
		risk += 25
	}
	risk -= attrs.StockOptions * 8
	risk -= (attrs.Satisfaction - 1) * 10
	risk -= (attrs.JobLevel - 1) * 5
	risk += tenureAdjustment(attrs.Tenure)
	risk += managerAdjustment(attrs.YearsWithManager)
	risk -= (attrs.WorkLifeBalance - 1) * 7
	risk += ageAdjustment(attrs.Age)

	return risk
}

func tenureAdjustment(tenure int) int {
	switch {
	case tenure < 2:
		return 15
	case tenure > 10:
		return -10
	case tenure <= 5:
		return 5
	default:
		return 0
	}
}

func managerAdjustment(years int) int {
	switch {
	case years < 1:
		return 10
	case years > 5:
		return -8
	default:
		return 0
	}
}

func ageAdjustment(age int) int {
	switch {
	case age < 25:
		return 8
	case age > 50:
		return -5
	default:
		return 0
	}
}

func levelFor(probability float64) models.RiskLevel {
	if probability >= HighRiskThreshold {
		return models.RiskHigh
	}
	return models.RiskLow
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
