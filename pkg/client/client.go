package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a Go SDK for the attrition-engine API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new attrition-engine client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PredictRequest is the employee profile sent for scoring.
// Nil fields are left out so the server applies its defaults.
type PredictRequest struct {
	Age              *int  `json:"age,omitempty"`
	Tenure           *int  `json:"tenure,omitempty"`
	JobLevel         *int  `json:"jobLevel,omitempty"`
	Satisfaction     *int  `json:"satisfaction,omitempty"`
	Overtime         *bool `json:"-"`
	StockOptions     *int  `json:"stockOptions,omitempty"`
	YearsWithManager *int  `json:"yearsWithManager,omitempty"`
	WorkLifeBalance  *int  `json:"workLifeBalance,omitempty"`
}

// MarshalJSON encodes overtime as the "yes"/"no" string the API expects
func (r PredictRequest) MarshalJSON() ([]byte, error) {
	type alias PredictRequest
	out := struct {
		alias
		Overtime string `json:"overtime,omitempty"`
	}{alias: alias(r)}

	if r.Overtime != nil {
		out.Overtime = "no"
		if *r.Overtime {
			out.Overtime = "yes"
		}
	}
	return json.Marshal(out)
}

// Int returns a pointer to v, for building a PredictRequest
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for building a PredictRequest
func Bool(v bool) *bool { return &v }

// Factor is one contributing factor of a prediction
type Factor struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
	Weight string `json:"weight"`
}

// Prediction represents a prediction response
type Prediction struct {
	Probability     float64  `json:"probability"`
	RiskLevel       string   `json:"risk_level"`
	Factors         []Factor `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// IsHighRisk reports whether the prediction was labelled high risk
func (p *Prediction) IsHighRisk() bool {
	return p.RiskLevel == "high"
}

// ModelInfo represents the model metadata response
type ModelInfo struct {
	ModelType    string  `json:"model_type"`
	Accuracy     float64 `json:"accuracy"`
	Precision    float64 `json:"precision"`
	F1Score      float64 `json:"f1_score"`
	Dataset      string  `json:"dataset"`
	TrainingDate string  `json:"training_date"`
}

// APIError is returned when the server answers with an error envelope
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s - %s", e.Status, e.Code, e.Message)
}

// Predict scores an employee profile
func (c *Client) Predict(ctx context.Context, req PredictRequest) (*Prediction, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var result Prediction
	if err := c.do(ctx, http.MethodPost, "/api/v1/predict", bytes.NewReader(body), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ModelInfo retrieves the static model metadata
func (c *Client) ModelInfo(ctx context.Context) (*ModelInfo, error) {
	var result ModelInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/model-info", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks if the API is healthy
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do performs a request and decodes the response envelope into out
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if !envelope.Success {
		apiErr := &APIError{Status: resp.StatusCode, Code: "unknown", Message: http.StatusText(resp.StatusCode)}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return nil
}
