// Package observable extracts typed observables from incident entities.
// A static table maps each supported entity kind to one or more extraction
// rules; a Set accumulates the extracted observables with ordered dedup.
package observable

import (
	"fmt"

	"github.com/linnemanlabs/hivebridge/internal/entity"
)

// Rule extracts one observable kind from an entity property.
type Rule struct {
	DataType      string
	ValueProperty string
	Tags          []string
}

// rulesByKind is the closed dispatch table for observable extraction.
// Kinds not listed here are skipped during mapping.
var rulesByKind = mustRules(map[entity.Kind][]Rule{
	entity.KindAccount:       {{DataType: "mail", ValueProperty: "userPrincipalName"}},
	entity.KindDNSResolution: {{DataType: "domain", ValueProperty: "domainName"}},
	entity.KindFile:          {{DataType: "filename", ValueProperty: "fileName"}},
	entity.KindFileHash:      {{DataType: "hash", ValueProperty: "hashValue"}},
	entity.KindHost:          {{DataType: "hostname", ValueProperty: "hostName"}},
	entity.KindIP:            {{DataType: "ip", ValueProperty: "address"}},
	entity.KindMailbox:       {{DataType: "mail", ValueProperty: "mailboxPrimaryAddress", Tags: []string{"mailbox"}}},
	entity.KindMailCluster:   {{DataType: "other", ValueProperty: "threats", Tags: []string{"mail-cluster-threat"}}},
	entity.KindMailMessage: {
		{DataType: "mail", ValueProperty: "recipient", Tags: []string{"mail-recipient"}},
		{DataType: "mail", ValueProperty: "p1Sender", Tags: []string{"mail-sender"}},
		{DataType: "mail", ValueProperty: "p2Sender", Tags: []string{"mail-sender"}},
		{DataType: "ip", ValueProperty: "senderIP", Tags: []string{"mail-sender-ip"}},
		{DataType: "mail-subject", ValueProperty: "subject"},
		{DataType: "url", ValueProperty: "urls"},
		{DataType: "other", ValueProperty: "internetMessageId", Tags: []string{"internet-message-id"}},
		{DataType: "other", ValueProperty: "networkMessageId", Tags: []string{"network-message-id"}},
		// The upstream contract lists the recipient rule twice; the Set
		// absorbs the duplicate, so it is kept rather than collapsed.
		{DataType: "mail", ValueProperty: "recipient", Tags: []string{"mail-recipient"}},
	},
	entity.KindURL: {{DataType: "url", ValueProperty: "url"}},
})

// mustRules validates the table at package load: every key must be a known
// kind and every rule must be complete. Table bugs fail at startup, not per
// payload.
func mustRules(m map[entity.Kind][]Rule) map[entity.Kind][]Rule {
	for kind, rules := range m {
		if !kind.Known() {
			panic(fmt.Sprintf("observable: rule table references unknown entity kind %q", kind))
		}
		if len(rules) == 0 {
			panic(fmt.Sprintf("observable: entity kind %q has no rules", kind))
		}
		for i, r := range rules {
			if r.DataType == "" || r.ValueProperty == "" {
				panic(fmt.Sprintf("observable: incomplete rule %d for kind %q", i, kind))
			}
		}
	}
	return m
}
