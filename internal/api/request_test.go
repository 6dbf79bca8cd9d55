package api

import (
	"errors"
	"testing"

	"github.com/terra-clan/attrition-engine/internal/models"
)

func TestParseEmployee_Defaults(t *testing.T) {
	attrs, err := ParseEmployee([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseEmployee failed: %v", err)
	}
	if attrs != models.DefaultEmployee() {
		t.Errorf("expected defaults, got %+v", attrs)
	}
	if attrs.StockOptions != 1 {
		t.Errorf("expected stock options default 1, got %d", attrs.StockOptions)
	}
}

func TestParseEmployee_Coercion(t *testing.T) {
	body := `{
		"age": "28",
		"tenure": 1.9,
		"jobLevel": " 3 ",
		"satisfaction": 2,
		"overtime": "yes",
		"stockOptions": "0",
		"yearsWithManager": 0,
		"workLifeBalance": "4",
		"department": "Sales"
	}`

	attrs, err := ParseEmployee([]byte(body))
	if err != nil {
		t.Fatalf("ParseEmployee failed: %v", err)
	}

	want := models.EmployeeAttributes{
		Age:              28,
		Tenure:           1,
		JobLevel:         3,
		Satisfaction:     2,
		Overtime:         true,
		StockOptions:     0,
		YearsWithManager: 0,
		WorkLifeBalance:  4,
	}
	if attrs != want {
		t.Errorf("unexpected attributes:\n got  %+v\n want %+v", attrs, want)
	}
}

func TestParseEmployee_Overtime(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{"overtime": "yes"}`, true},
		{`{"overtime": "YES"}`, false},
		{`{"overtime": "Yes"}`, false},
		{`{"overtime": "true"}`, false},
		{`{"overtime": "maybe"}`, false},
		{`{"overtime": "no"}`, false},
		{`{"overtime": ""}`, false},
		{`{"overtime": true}`, true},
		{`{"overtime": false}`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			attrs, err := ParseEmployee([]byte(tt.body))
			if err != nil {
				t.Fatalf("ParseEmployee failed: %v", err)
			}
			if attrs.Overtime != tt.want {
				t.Errorf("expected overtime %v, got %v", tt.want, attrs.Overtime)
			}
		})
	}
}

func TestParseEmployee_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		code  string
		field string
	}{
		{"malformed json", `{"age": `, CodeInvalidRequest, ""},
		{"array body", `[1, 2]`, CodeInvalidRequest, ""},
		{"null body", `null`, CodeInvalidRequest, ""},
		{"trailing garbage", `{"age": 30} garbage`, CodeInvalidRequest, ""},
		{"second object", `{"age": 30}{"age": 99}`, CodeInvalidRequest, ""},
		{"non numeric age", `{"age": "thirty"}`, CodeValidationError, "age"},
		{"null tenure", `{"tenure": null}`, CodeValidationError, "tenure"},
		{"object job level", `{"jobLevel": {"value": 2}}`, CodeValidationError, "jobLevel"},
		{"fractional string", `{"age": "30.5"}`, CodeValidationError, "age"},
		{"satisfaction too high", `{"satisfaction": 5}`, CodeValidationError, "satisfaction"},
		{"satisfaction zero", `{"satisfaction": "0"}`, CodeValidationError, "satisfaction"},
		{"work life balance too low", `{"workLifeBalance": 0}`, CodeValidationError, "workLifeBalance"},
		{"job level zero", `{"jobLevel": 0}`, CodeValidationError, "jobLevel"},
		{"negative tenure", `{"tenure": -1}`, CodeValidationError, "tenure"},
		{"negative stock options", `{"stockOptions": -2}`, CodeValidationError, "stockOptions"},
		{"huge number", `{"age": 1e12}`, CodeValidationError, "age"},
		{"overtime number", `{"overtime": 1}`, CodeValidationError, "overtime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEmployee([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected *RequestError, got %T", err)
			}
			if reqErr.Code != tt.code {
				t.Errorf("expected code %s, got %s (%s)", tt.code, reqErr.Code, reqErr.Message)
			}
			if reqErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, reqErr.Field)
			}
			if reqErr.Message == "" {
				t.Error("expected descriptive message")
			}
		})
	}
}
