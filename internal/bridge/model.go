package bridge

import (
	"time"

	"github.com/linnemanlabs/hivebridge/internal/entity"
)

// DetectionPayload is the endpoint-detection vendor's webhook body. Endpoint
// and EndpointUser each hold a single record or a list of records; they are
// normalized with entity.ToList at assembly time.
type DetectionPayload struct {
	Detection    Detection `json:"Detection"`
	Endpoint     any       `json:"Endpoint,omitempty"`
	EndpointUser any       `json:"EndpointUser,omitempty"`
}

// Detection is the vendor's detection event header. PublishedAt is epoch
// milliseconds as sent on the wire.
type Detection struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	Details     string `json:"details"`
	PublishedAt int64  `json:"published_at"`
}

// IncidentPayload is the SIEM-style incident feed's webhook body.
type IncidentPayload struct {
	Object IncidentObject `json:"object"`
}

// IncidentObject wraps the incident properties container. Properties is a
// pointer so a payload without the container is distinguishable from one
// with empty properties.
type IncidentObject struct {
	Properties *IncidentProperties `json:"properties"`
}

// IncidentProperties carries the incident fields the bridge consumes.
// Alerts stays nil when the field is absent from the payload and becomes an
// empty non-nil slice for an explicit empty list; the description builder
// relies on that distinction.
type IncidentProperties struct {
	ProviderName       string          `json:"providerName"`
	ProviderIncidentID string          `json:"providerIncidentId"`
	Title              string          `json:"title"`
	Severity           string          `json:"severity"`
	CreatedTimeUTC     string          `json:"createdTimeUtc"`
	IncidentURL        string          `json:"incidentUrl"`
	Description        string          `json:"description,omitempty"`
	Alerts             []RelatedAlert  `json:"alerts,omitempty"`
	RelatedEntities    []entity.Entity `json:"relatedEntities,omitempty"`
	AdditionalData     AdditionalData  `json:"additionalData,omitempty"`
}

// RelatedAlert is one alert attached to an incident.
type RelatedAlert struct {
	Name       string            `json:"name"`
	Properties RelatedAlertProps `json:"properties"`
}

// RelatedAlertProps is the subset of related-alert fields rendered in the
// description table.
type RelatedAlertProps struct {
	AlertDisplayName string `json:"alertDisplayName"`
	AlertLink        string `json:"alertLink"`
	StartTimeUTC     string `json:"startTimeUtc"`
}

// AdditionalData carries feed extras; only techniques are consumed.
type AdditionalData struct {
	Techniques []string `json:"techniques,omitempty"`
}

// epochMillis converts an RFC3339 timestamp to epoch milliseconds; an
// unparseable value yields zero, matching the feed's own lenient handling.
func epochMillis(ts string) int64 {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
