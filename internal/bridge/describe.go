package bridge

import (
	"fmt"
	"strings"
)

const noDescription = "No description available"

// BuildDescription renders the markdown narrative for an incident. A nil
// properties container yields the fixed fallback string. A related-alerts
// section is appended whenever the alerts field was present on the wire,
// even when the list is empty; an entirely absent field emits no section.
func BuildDescription(p *IncidentProperties) string {
	if p == nil {
		return noDescription
	}

	var b strings.Builder
	if p.Description != "" {
		b.WriteString(p.Description)
	}

	if p.Alerts != nil {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("### Related Alerts\n\n")

		if len(p.Alerts) == 0 {
			b.WriteString("No related alerts found.")
			return b.String()
		}

		b.WriteString("| Alert Title | Alert ID | Start Time |\n")
		b.WriteString("|---|---|---|\n")
		for _, ra := range p.Alerts {
			fmt.Fprintf(&b, "| [%s](%s) | %s | %s |\n",
				ra.Properties.AlertDisplayName,
				ra.Properties.AlertLink,
				ra.Name,
				ra.Properties.StartTimeUTC,
			)
		}
	}

	return b.String()
}
