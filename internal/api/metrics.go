package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/terra-clan/attrition-engine/internal/models"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attrition_predictions_total",
			Help: "Total number of predictions served, by risk level",
		},
		[]string{"risk_level"},
	)

	PredictionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attrition_prediction_errors_total",
			Help: "Total number of rejected prediction requests, by error code",
		},
		[]string{"code"},
	)

	PredictionProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "attrition_probability",
			Help:    "Distribution of predicted attrition probabilities",
			Buckets: prometheus.LinearBuckets(10, 10, 9),
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "attrition_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route", "status"},
	)
)

func observePrediction(result models.PredictionResult) {
	PredictionsTotal.WithLabelValues(string(result.RiskLevel)).Inc()
	PredictionProbability.Observe(result.Probability)
}

func observeRejection(code string) {
	PredictionErrorsTotal.WithLabelValues(code).Inc()
}
