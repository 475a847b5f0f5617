// Package entity models the evidence records embedded in incident payloads.
package entity

import (
	"fmt"
	"strconv"
)

// Kind is the enumerated entity kind tag carried by the incident feed.
type Kind string

const (
	KindAccount       Kind = "Account"
	KindDNSResolution Kind = "DnsResolution"
	KindFile          Kind = "File"
	KindFileHash      Kind = "FileHash"
	KindHost          Kind = "Host"
	KindIP            Kind = "Ip"
	KindMailCluster   Kind = "MailCluster"
	KindMailMessage   Kind = "MailMessage"
	KindMailbox       Kind = "Mailbox"
	KindURL           Kind = "Url"
)

var knownKinds = map[Kind]struct{}{
	KindAccount:       {},
	KindDNSResolution: {},
	KindFile:          {},
	KindFileHash:      {},
	KindHost:          {},
	KindIP:            {},
	KindMailCluster:   {},
	KindMailMessage:   {},
	KindMailbox:       {},
	KindURL:           {},
}

// Known reports whether k is part of the supported kind enumeration.
// Feeds routinely send kinds outside this set; those entities are skipped
// during observable extraction rather than rejected.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// Entity is a read-only evidence record from the incident payload.
type Entity struct {
	Kind       Kind           `json:"kind"`
	Properties map[string]any `json:"properties"`
}

// Property returns the named property value, or nil when absent.
func (e Entity) Property(name string) any {
	return e.Properties[name]
}

// ToList normalizes a decoded JSON value that may be absent, a single value,
// or a list into an ordered slice. Several payload fields use this
// singular-or-list convention.
func ToList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

// Stringify renders a scalar property value to its observable string form.
// nil renders as "" so absent values can be filtered uniformly.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		// JSON numbers decode as float64; keep integral values unpadded.
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
