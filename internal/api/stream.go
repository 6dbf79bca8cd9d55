package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/terra-clan/attrition-engine/internal/models"
	"github.com/terra-clan/attrition-engine/internal/scoring"
)

const streamIdleTimeout = 5 * time.Minute

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream message types
const (
	StreamConnected  = "connected"
	StreamPrediction = "prediction"
	StreamError      = "error"
)

// StreamMessage is a server-to-client message on the prediction stream
type StreamMessage struct {
	Type  string                   `json:"type"`
	Data  *models.PredictionResult `json:"data,omitempty"`
	Error string                   `json:"error,omitempty"`
}

// handlePredictStream scores every text message received on the socket.
// Each message is parsed like a POST /predict body; a bad message gets an
// error reply and the connection stays open.
func (s *Server) handlePredictStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	requestID := middleware.GetReqID(r.Context())
	conn.SetReadLimit(s.config.Server.MaxBodyBytes)

	slog.Info("prediction stream connected", "request_id", requestID)

	if err := sendStreamMessage(conn, StreamMessage{Type: StreamConnected}); err != nil {
		return
	}

	served := 0
	for {
		conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))

		msgType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "error", err, "request_id", requestID)
			}
			break
		}

		if msgType != websocket.TextMessage {
			if err := sendStreamMessage(conn, StreamMessage{Type: StreamError, Error: "only text messages are supported"}); err != nil {
				break
			}
			continue
		}

		attrs, err := ParseEmployee(message)
		if err != nil {
			code := CodeInvalidRequest
			var reqErr *RequestError
			if errors.As(err, &reqErr) {
				code = reqErr.Code
			}
			observeRejection(code)
			if err := sendStreamMessage(conn, StreamMessage{Type: StreamError, Error: err.Error()}); err != nil {
				break
			}
			continue
		}

		result := scoring.Predict(attrs)
		observePrediction(result)
		served++

		if err := sendStreamMessage(conn, StreamMessage{Type: StreamPrediction, Data: &result}); err != nil {
			break
		}
	}

	slog.Info("prediction stream disconnected", "request_id", requestID, "predictions", served)
}

func sendStreamMessage(conn *websocket.Conn, msg StreamMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal stream message", "error", err)
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Debug("failed to send stream message", "error", err)
		return err
	}
	return nil
}
