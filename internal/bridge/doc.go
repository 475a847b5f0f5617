// Package bridge is the business boundary for webhook normalization. It
// defines the source payload models, the description builder, and the
// Service that assembles canonical alerts and hands them to the
// case-management API.
package bridge
