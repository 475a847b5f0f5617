package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/hivebridge/internal/alert"
	"github.com/linnemanlabs/hivebridge/internal/attack"
	"github.com/linnemanlabs/hivebridge/internal/observable"
)

// SourceSIEM labels incident-feed metrics; the alert itself carries the
// feed's providerName as its source.
const SourceSIEM = "siem"

// severityLevels maps feed severity strings to case severities. Values
// outside the table leave severity unset, which omits it on the wire.
var severityLevels = map[string]int{
	"Informational": 1,
	"Low":           1,
	"Medium":        2,
	"High":          3,
}

// ProcessIncident assembles and submits the incident-feed variant:
// deduplicated observables from all related entities, the markdown
// description, and technique enrichment when the incident carries
// technique identifiers.
func (s *Service) ProcessIncident(ctx context.Context, payload *IncidentPayload) (json.RawMessage, error) {
	if payload == nil || payload.Object.Properties == nil {
		return nil, xerrors.New("incident payload has no properties")
	}

	start := time.Now()
	runID := newRunID()
	p := payload.Object.Properties

	set := observable.NewSet()
	for _, e := range p.RelatedEntities {
		set.AddAll(observable.Map(e))
	}

	al := &alert.Alert{
		Type:         alert.TypeExternal,
		Source:       p.ProviderName,
		SourceRef:    p.ProviderIncidentID,
		Title:        p.Title,
		Description:  BuildDescription(p),
		Severity:     severityLevels[p.Severity],
		Status:       alert.StatusNew,
		Date:         epochMillis(p.CreatedTimeUTC),
		ExternalLink: p.IncidentURL,
		Observables:  set.Observables(),
	}

	if len(p.AdditionalData.Techniques) > 0 && s.resolver != nil {
		lookupStart := time.Now()
		patterns, err := s.resolver.Resolve(ctx, p.AdditionalData.Techniques)
		s.metrics.observeLookup(time.Since(lookupStart).Seconds())
		if err != nil {
			s.metrics.observeAlert(SourceSIEM, "error", time.Since(start).Seconds(), 0)
			return nil, fmt.Errorf("resolve techniques: %w", err)
		}
		if len(patterns) > 0 {
			al.Tags = attack.Tags(patterns)
			al.Procedures = attack.Procedures(patterns, al.Date)
		}
	}

	s.logger.Info(ctx, "assembled incident alert",
		"run_id", runID,
		"provider", p.ProviderName,
		"incident_id", p.ProviderIncidentID,
		"entities", len(p.RelatedEntities),
		"observables", len(al.Observables),
	)

	return s.submit(ctx, SourceSIEM, runID, start, al)
}
