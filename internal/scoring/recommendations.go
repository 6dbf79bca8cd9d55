package scoring

import "github.com/terra-clan/attrition-engine/internal/models"

// Recommendation texts
const (
	RecommendReduceOvertime  = "Reduce overtime requirements or provide compensatory time off"
	RecommendEquity          = "Consider equity compensation to increase retention"
	RecommendOneOnOne        = "Conduct 1-on-1 to understand satisfaction issues and create action plan"
	RecommendFlexibleWork    = "Implement flexible work arrangements or work-life balance initiatives"
	RecommendOnboarding      = "Strengthen onboarding and early career development programs"
	RecommendManagerRelation = "Ensure strong manager-employee relationship building"
)

// FallbackRecommendations is returned when no specific recommendation applies.
var FallbackRecommendations = []string{
	"Continue current engagement and development practices",
	"Maintain regular check-ins to monitor satisfaction",
	"Recognize and reward strong performance",
}

// Recommend returns retention recommendations in fixed check order.
func Recommend(attrs models.EmployeeAttributes) []string {
	var recs []string

	if attrs.Overtime {
		recs = append(recs, RecommendReduceOvertime)
	}
	if attrs.StockOptions < 2 {
		recs = append(recs, RecommendEquity)
	}
	if attrs.Satisfaction <= 2 {
		recs = append(recs, RecommendOneOnOne)
	}
	if attrs.WorkLifeBalance <= 2 {
		recs = append(recs, RecommendFlexibleWork)
	}
	if attrs.Tenure < 2 {
		recs = append(recs, RecommendOnboarding)
	}
	if attrs.YearsWithManager < 1 {
		recs = append(recs, RecommendManagerRelation)
	}

	if len(recs) == 0 {
		// copy so callers cannot mutate the shared fallback
		return append([]string(nil), FallbackRecommendations...)
	}
	return recs
}
