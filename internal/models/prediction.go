package models

// RiskLevel is the categorical attrition risk
type RiskLevel string

const (
	RiskHigh RiskLevel = "high"
	RiskLow  RiskLevel = "low"
)

// IsHigh returns true for the high risk level
func (l RiskLevel) IsHigh() bool {
	return l == RiskHigh
}

// Factor describes one input condition's presumed contribution to risk
type Factor struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
	Weight string `json:"weight"`
}

// PredictionResult is the combined output of a single prediction
type PredictionResult struct {
	Probability     float64   `json:"probability"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Factors         []Factor  `json:"factors"`
	Recommendations []string  `json:"recommendations"`
}

// ModelInfo is the static metadata describing the scoring model
type ModelInfo struct {
	ModelType    string  `json:"model_type"`
	Accuracy     float64 `json:"accuracy"`
	Precision    float64 `json:"precision"`
	F1Score      float64 `json:"f1_score"`
	Dataset      string  `json:"dataset"`
	TrainingDate string  `json:"training_date"`
}
