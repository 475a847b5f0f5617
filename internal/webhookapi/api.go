package webhookapi

import (
	"context"
	"encoding/json"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/hivebridge/internal/bridge"
)

// BridgeService defines the business operations webhookapi needs.
type BridgeService interface {
	ProcessDetection(ctx context.Context, payload *bridge.DetectionPayload) (json.RawMessage, error)
	ProcessIncident(ctx context.Context, payload *bridge.IncidentPayload) (json.RawMessage, error)
}

// API holds dependencies for HTTP handlers.
type API struct {
	logger log.Logger
	svc    BridgeService
}

// New creates a new API handler.
func New(logger log.Logger, svc BridgeService) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("bridge service is required"))
	}
	return &API{
		logger: logger,
		svc:    svc,
	}
}

// RegisterRoutes attaches the webhook endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/webhooks", func(r chi.Router) {
		r.Post("/edr", a.handleDetection)
		r.Post("/siem", a.handleIncident)
	})
}
