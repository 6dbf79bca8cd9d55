package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialStream(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewServer(testConfig()).Router())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/predict/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial stream: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello StreamMessage
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("failed to read greeting: %v", err)
	}
	if hello.Type != StreamConnected {
		t.Fatalf("expected connected greeting, got %+v", hello)
	}
	return conn
}

func TestPredictStream(t *testing.T) {
	conn := dialStream(t)

	steps := []struct {
		body        string
		wantType    string
		probability float64
	}{
		{`{"overtime": "yes"}`, StreamPrediction, 33.0},
		{`{"satisfaction": "ten"}`, StreamError, 0},
		{`{"overtime": "yes", "tenure": 0}`, StreamPrediction, 43.0},
	}

	for _, step := range steps {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(step.body)); err != nil {
			t.Fatalf("failed to write message: %v", err)
		}

		var msg StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("failed to read reply to %s: %v", step.body, err)
		}
		if msg.Type != step.wantType {
			t.Fatalf("expected %s reply to %s, got %+v", step.wantType, step.body, msg)
		}

		switch msg.Type {
		case StreamPrediction:
			if msg.Data == nil || msg.Data.Probability != step.probability {
				t.Errorf("expected probability %.1f, got %+v", step.probability, msg.Data)
			}
		case StreamError:
			if !strings.Contains(msg.Error, "satisfaction") {
				t.Errorf("expected error naming the field, got %q", msg.Error)
			}
		}
	}
}

func TestPredictStream_BinaryRejected(t *testing.T) {
	conn := dialStream(t)

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0x01}); err != nil {
		t.Fatalf("failed to write message: %v", err)
	}

	var msg StreamMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read reply: %v", err)
	}
	if msg.Type != StreamError {
		t.Errorf("expected error reply, got %+v", msg)
	}
}

func TestPredictStream_Disabled(t *testing.T) {
	cfg := testConfig()
	disabled := false
	cfg.Stream.Enabled = &disabled

	rec := doRequest(t, NewServer(cfg).Router(), http.MethodGet, "/api/v1/predict/stream", "")
	if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected stream route to be absent, got %d", rec.Code)
	}
}
