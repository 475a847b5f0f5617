package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/oklog/ulid/v2"

	"github.com/linnemanlabs/hivebridge/internal/alert"
	"github.com/linnemanlabs/hivebridge/internal/attack"
)

// CaseCreator is the downstream alert-creation collaborator.
type CaseCreator interface {
	CreateAlert(ctx context.Context, al *alert.Alert) (json.RawMessage, error)
}

// Notifier receives a copy of each successfully created alert. Notification
// failures are logged, never propagated.
type Notifier interface {
	Send(ctx context.Context, al *alert.Alert, runID string) error
}

// Service normalizes source payloads into canonical alerts and submits them.
// It holds no state between invocations; the only process-wide data is the
// static observable rule table.
type Service struct {
	creator  CaseCreator
	resolver *attack.Resolver
	notifier Notifier
	logger   log.Logger
	metrics  *Metrics
}

// NewService creates the bridge service. The resolver and notifier are
// optional; creator is required.
func NewService(creator CaseCreator, resolver *attack.Resolver, logger log.Logger, metrics *Metrics, notifier Notifier) *Service {
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		creator:  creator,
		resolver: resolver,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// submit hands an assembled alert to the case API and relays its creation
// result verbatim. There is no retry and no failure recovery here; any
// creation error propagates to the caller unchanged.
func (s *Service) submit(ctx context.Context, source, runID string, start time.Time, al *alert.Alert) (json.RawMessage, error) {
	createStart := time.Now()
	res, err := s.creator.CreateAlert(ctx, al)
	createDur := time.Since(createStart).Seconds()

	if err != nil {
		s.metrics.observeCaseCreate("error", createDur)
		s.metrics.observeAlert(source, "error", time.Since(start).Seconds(), 0)
		s.logger.Error(ctx, err, "alert creation failed", "run_id", runID, "source", source)
		return nil, fmt.Errorf("create alert: %w", err)
	}

	s.metrics.observeCaseCreate("success", createDur)
	s.metrics.observeAlert(source, "success", time.Since(start).Seconds(), len(al.Observables))

	s.logger.Info(ctx, "alert created",
		"run_id", runID,
		"source", source,
		"source_ref", al.SourceRef,
		"observables", len(al.Observables),
		"tags", len(al.Tags),
		"procedures", len(al.Procedures),
	)

	if s.notifier != nil {
		if nerr := s.notifier.Send(ctx, al, runID); nerr != nil {
			s.logger.Warn(ctx, "notification failed", "run_id", runID, "error", nerr)
		}
	}

	return res, nil
}

func newRunID() string {
	return ulid.Make().String()
}
