package scoring

import (
	"fmt"

	"github.com/terra-clan/attrition-engine/internal/models"
)

// Impact labels
const (
	ImpactHighRisk   = "High Risk"
	ImpactRiskFactor = "Risk Factor"
	ImpactProtective = "Protective"
)

// AnalyzeFactors lists the human-readable drivers behind a score.
// The thresholds here intentionally differ from RawScore in places: one stock
// option and a satisfaction of 3 produce no entry.
func AnalyzeFactors(attrs models.EmployeeAttributes) []models.Factor {
	factors := []models.Factor{}

	if attrs.Overtime {
		factors = append(factors, models.Factor{Name: "Overtime Work", Impact: ImpactHighRisk, Weight: "+25%"})
	}

	switch {
	case attrs.StockOptions == 0:
		factors = append(factors, models.Factor{Name: "No Stock Options", Impact: ImpactRiskFactor, Weight: "+8%"})
	case attrs.StockOptions >= 2:
		factors = append(factors, models.Factor{
			Name:   "Stock Options",
			Impact: ImpactProtective,
			Weight: fmt.Sprintf("-%d%%", attrs.StockOptions*8),
		})
	}

	switch {
	case attrs.Satisfaction <= 2:
		factors = append(factors, models.Factor{Name: "Low Job Satisfaction", Impact: ImpactHighRisk, Weight: "+10-20%"})
	case attrs.Satisfaction == 4:
		factors = append(factors, models.Factor{Name: "High Satisfaction", Impact: ImpactProtective, Weight: "-30%"})
	}

	if attrs.Tenure < 2 {
		factors = append(factors, models.Factor{Name: "Short Tenure", Impact: ImpactRiskFactor, Weight: "+15%"})
	}

	if attrs.YearsWithManager < 1 {
		factors = append(factors, models.Factor{Name: "New to Manager", Impact: ImpactRiskFactor, Weight: "+10%"})
	}

	if attrs.WorkLifeBalance <= 2 {
		factors = append(factors, models.Factor{Name: "Poor Work-Life Balance", Impact: ImpactRiskFactor, Weight: "+7-14%"})
	}

	return factors
}
