package models

// EmployeeAttributes is the validated input record for a prediction.
// Every field holds a concrete value; defaults are applied by the request parser.
type EmployeeAttributes struct {
	Age              int  `json:"age"`
	Tenure           int  `json:"tenure"`
	JobLevel         int  `json:"job_level"`
	Satisfaction     int  `json:"satisfaction"`     // 1-4
	Overtime         bool `json:"overtime"`
	StockOptions     int  `json:"stock_options"`
	YearsWithManager int  `json:"years_with_manager"`
	WorkLifeBalance  int  `json:"work_life_balance"` // 1-4
}

// DefaultEmployee returns the attribute set used for fields missing from a request.
// Stock options default to 1 at the HTTP boundary, matching the web form.
func DefaultEmployee() EmployeeAttributes {
	return EmployeeAttributes{
		Age:              35,
		Tenure:           5,
		JobLevel:         2,
		Satisfaction:     3,
		Overtime:         false,
		StockOptions:     1,
		YearsWithManager: 3,
		WorkLifeBalance:  3,
	}
}
