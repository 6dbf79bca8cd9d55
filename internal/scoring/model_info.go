package scoring

import "github.com/terra-clan/attrition-engine/internal/models"

// Info returns the static model metadata served by the API.
func Info() models.ModelInfo {
	return models.ModelInfo{
		ModelType:    "Random Forest",
		Accuracy:     0.91,
		Precision:    0.89,
		F1Score:      0.88,
		Dataset:      "IBM HR Analytics (10,000+ records)",
		TrainingDate: "2025-10-30",
	}
}
