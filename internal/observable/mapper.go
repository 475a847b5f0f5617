package observable

import (
	"github.com/linnemanlabs/hivebridge/internal/alert"
	"github.com/linnemanlabs/hivebridge/internal/entity"
)

// Map extracts observable candidates from one entity. Entities of a kind
// outside the rule table produce nothing. List-valued properties expand to
// one candidate per element; nil and empty values are dropped here, before
// they ever reach a Set.
func Map(e entity.Entity) []alert.Observable {
	rules, ok := rulesByKind[e.Kind]
	if !ok {
		return nil
	}

	var out []alert.Observable
	for _, r := range rules {
		for _, v := range entity.ToList(e.Property(r.ValueProperty)) {
			data := entity.Stringify(v)
			if data == "" {
				continue
			}
			out = append(out, alert.Observable{
				DataType: r.DataType,
				Data:     data,
				Tags:     r.Tags,
			})
		}
	}
	return out
}
