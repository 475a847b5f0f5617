package webhookapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/hivebridge/internal/bridge"
)

func (a *API) handleDetection(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	a.logger.Info(r.Context(), "raw webhook", "source", bridge.SourceEDR, "body", string(body))
	r.Body = io.NopCloser(bytes.NewReader(body))

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("hivebridge.source", bridge.SourceEDR))

	var payload bridge.DetectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"invalid payload"}`, http.StatusBadRequest)
		return
	}

	a.relay(w, r, bridge.SourceEDR, func() (json.RawMessage, error) {
		return a.svc.ProcessDetection(r.Context(), &payload)
	})
}

func (a *API) handleIncident(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	a.logger.Info(r.Context(), "raw webhook", "source", bridge.SourceSIEM, "body", string(body))
	r.Body = io.NopCloser(bytes.NewReader(body))

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("hivebridge.source", bridge.SourceSIEM))

	var payload bridge.IncidentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"invalid payload"}`, http.StatusBadRequest)
		return
	}

	a.relay(w, r, bridge.SourceSIEM, func() (json.RawMessage, error) {
		return a.svc.ProcessIncident(r.Context(), &payload)
	})
}

// relay runs one process call and writes the case API's creation result
// through unmodified. Processing failures surface as 502; the bridge has no
// retry of its own.
func (a *API) relay(w http.ResponseWriter, r *http.Request, source string, process func() (json.RawMessage, error)) {
	result, err := process()
	if err != nil {
		a.logger.Error(r.Context(), err, "webhook processing failed", "source", source)
		http.Error(w, `{"error":"alert creation failed"}`, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(result)
}
