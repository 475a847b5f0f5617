// Package alert defines the canonical case-management alert schema that both
// webhook sources are normalized into.
package alert

// Type distinguishes how the downstream case manager treats an alert.
type Type string

const (
	// TypeEvent is used for single endpoint-detection events.
	TypeEvent Type = "event"

	// TypeExternal is used for incidents imported from an external feed.
	TypeExternal Type = "external"
)

// StatusNew is the initial workflow status for imported incidents.
const StatusNew = "New"

// Observable is a typed indicator (hostname, mail address, hash, ip, ...)
// attached to an alert for downstream correlation.
type Observable struct {
	DataType string   `json:"dataType"`
	Data     string   `json:"data"`
	Tags     []string `json:"tags,omitempty"`
}

// Procedure ties an alert to one attack-framework pattern occurrence.
type Procedure struct {
	PatternID   string `json:"patternId"`
	Tactic      string `json:"tactic"`
	OccurDate   int64  `json:"occurDate"`
	Description string `json:"description,omitempty"`
}

// Alert is the canonical record submitted to the case-management API.
// Date and Procedure.OccurDate are epoch milliseconds. Severity is 1..3;
// zero means the source severity had no known mapping and the field is
// omitted on the wire.
type Alert struct {
	Type         Type         `json:"type"`
	Source       string       `json:"source"`
	SourceRef    string       `json:"sourceRef"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Severity     int          `json:"severity,omitempty"`
	Status       string       `json:"status,omitempty"`
	Date         int64        `json:"date"`
	ExternalLink string       `json:"externalLink,omitempty"`
	Observables  []Observable `json:"observables,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Procedures   []Procedure  `json:"procedures,omitempty"`
}
