package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/terra-clan/attrition-engine/internal/models"
)

// Error codes returned to API clients
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeTooLarge        = "request_too_large"
)

// RequestError describes why an inbound prediction request was rejected
type RequestError struct {
	Field   string
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func invalidField(field, format string, args ...interface{}) *RequestError {
	return &RequestError{
		Field:   field,
		Code:    CodeValidationError,
		Message: field + ": " + fmt.Sprintf(format, args...),
	}
}

// intField binds a request key to an attribute and its accepted range
type intField struct {
	key    string
	target func(a *models.EmployeeAttributes) *int
	min    *int
	max    *int
}

func bound(v int) *int { return &v }

var intFields = []intField{
	{key: "age", target: func(a *models.EmployeeAttributes) *int { return &a.Age }},
	{key: "tenure", target: func(a *models.EmployeeAttributes) *int { return &a.Tenure }, min: bound(0)},
	{key: "jobLevel", target: func(a *models.EmployeeAttributes) *int { return &a.JobLevel }, min: bound(1)},
	{key: "satisfaction", target: func(a *models.EmployeeAttributes) *int { return &a.Satisfaction }, min: bound(1), max: bound(4)},
	{key: "stockOptions", target: func(a *models.EmployeeAttributes) *int { return &a.StockOptions }, min: bound(0)},
	{key: "yearsWithManager", target: func(a *models.EmployeeAttributes) *int { return &a.YearsWithManager }, min: bound(0)},
	{key: "workLifeBalance", target: func(a *models.EmployeeAttributes) *int { return &a.WorkLifeBalance }, min: bound(1), max: bound(4)},
}

// numeric values beyond this are rejected before conversion to int
const maxMagnitude = 1_000_000

var requestSchema = mustSchema(`{
	"type": "object",
	"properties": {
		"age":              {"type": ["number", "string"]},
		"tenure":           {"type": ["number", "string"]},
		"jobLevel":         {"type": ["number", "string"]},
		"satisfaction":     {"type": ["number", "string"]},
		"stockOptions":     {"type": ["number", "string"]},
		"yearsWithManager": {"type": ["number", "string"]},
		"workLifeBalance":  {"type": ["number", "string"]},
		"overtime":         {"type": ["string", "boolean"]}
	}
}`)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return schema
}

// ParseEmployee validates a raw request body and builds the attribute record.
// It is the only place request data is checked; its output is always safe to score.
func ParseEmployee(body []byte) (models.EmployeeAttributes, error) {
	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return models.EmployeeAttributes{}, &RequestError{
			Code:    CodeInvalidRequest,
			Message: "request body must be a JSON object",
		}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return models.EmployeeAttributes{}, &RequestError{
			Code:    CodeInvalidRequest,
			Message: "request body must contain a single JSON object",
		}
	}

	if err := validateShape(raw); err != nil {
		return models.EmployeeAttributes{}, err
	}

	attrs := models.DefaultEmployee()

	for _, f := range intFields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		n, err := coerceInt(f.key, v)
		if err != nil {
			return models.EmployeeAttributes{}, err
		}
		if f.min != nil && n < *f.min {
			return models.EmployeeAttributes{}, invalidField(f.key, "must be at least %d, got %d", *f.min, n)
		}
		if f.max != nil && n > *f.max {
			return models.EmployeeAttributes{}, invalidField(f.key, "must be at most %d, got %d", *f.max, n)
		}
		*f.target(&attrs) = n
	}

	if v, ok := raw["overtime"]; ok {
		overtime, err := coerceOvertime(v)
		if err != nil {
			return models.EmployeeAttributes{}, err
		}
		attrs.Overtime = overtime
	}

	return attrs, nil
}

func validateShape(raw map[string]interface{}) error {
	result, err := requestSchema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return &RequestError{Code: CodeInvalidRequest, Message: fmt.Sprintf("validation error: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	msgs := make([]string, len(errs))
	for i, desc := range errs {
		msgs[i] = desc.Field() + ": " + desc.Description()
	}
	return &RequestError{
		Field:   errs[0].Field(),
		Code:    CodeValidationError,
		Message: strings.Join(msgs, "; "),
	}
}

// coerceInt accepts JSON numbers (truncated toward zero) and base-10 integer strings
func coerceInt(field string, v interface{}) (int, error) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, invalidField(field, "invalid number %q", val.String())
		}
		if math.Abs(f) > maxMagnitude {
			return 0, invalidField(field, "value %s out of range", val.String())
		}
		return int(math.Trunc(f)), nil
	case string:
		s := strings.TrimSpace(val)
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, invalidField(field, "invalid integer %q", val)
		}
		if n > maxMagnitude || n < -maxMagnitude {
			return 0, invalidField(field, "value %d out of range", n)
		}
		return n, nil
	default:
		return 0, invalidField(field, "expected number, got %T", v)
	}
}

// coerceOvertime matches the web form: only the exact string "yes" means overtime
func coerceOvertime(v interface{}) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		return val == "yes", nil
	default:
		return false, invalidField("overtime", "expected yes or no, got %T", v)
	}
}
