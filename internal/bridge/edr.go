package bridge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/hivebridge/internal/alert"
	"github.com/linnemanlabs/hivebridge/internal/entity"
)

// SourceEDR is the fixed source name on endpoint-detection alerts.
const SourceEDR = "edr"

// ProcessDetection assembles and submits the endpoint-detection variant.
// Hostname and mail observables come straight from the endpoint and
// endpoint-user records; this variant intentionally performs no dedup, so
// repeated records legally produce repeated observables.
func (s *Service) ProcessDetection(ctx context.Context, payload *DetectionPayload) (json.RawMessage, error) {
	if payload == nil {
		return nil, xerrors.New("detection payload is required")
	}

	start := time.Now()
	runID := newRunID()
	d := payload.Detection

	al := &alert.Alert{
		Type:        alert.TypeEvent,
		Source:      SourceEDR,
		SourceRef:   d.ID,
		Title:       d.Headline,
		Description: d.Details,
		Date:        d.PublishedAt,
	}

	for _, ep := range entity.ToList(payload.Endpoint) {
		if v := recordField(ep, "hostname"); v != "" {
			al.Observables = append(al.Observables, alert.Observable{DataType: "hostname", Data: v})
		}
	}
	for _, u := range entity.ToList(payload.EndpointUser) {
		if v := recordField(u, "username"); v != "" {
			al.Observables = append(al.Observables, alert.Observable{DataType: "mail", Data: v})
		}
	}

	s.logger.Info(ctx, "assembled detection alert",
		"run_id", runID,
		"detection_id", d.ID,
		"observables", len(al.Observables),
	)

	return s.submit(ctx, SourceEDR, runID, start, al)
}

// recordField reads one string field from a decoded endpoint/user record.
func recordField(rec any, name string) string {
	m, ok := rec.(map[string]any)
	if !ok {
		return ""
	}
	return entity.Stringify(m[name])
}
