package dijkstra

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/citymap/core"
)

// Display units for Summary.
const (
	UnitKilometres = "km"
	UnitHours      = "h"
)

// NoPath is the Summary of an empty PathResult.
const NoPath = "no path"

// UnitFor returns the display unit matching a metric name
// ("distance" → km, "time" → h); unknown names get no unit.
func UnitFor(metricName string) string {
	switch metricName {
	case "distance":
		return UnitKilometres
	case "time":
		return UnitHours
	default:
		return ""
	}
}

// Summary renders res as "A -> B -> C (25 km)".
// An empty result renders as NoPath; an empty unit omits the suffix.
func Summary(res core.PathResult, unit string) string {
	if res.Empty() {
		return NoPath
	}

	var b strings.Builder
	b.WriteString(strings.Join(res.Path, " -> "))
	b.WriteString(" (")
	b.WriteString(strconv.FormatFloat(res.DistanceOrTime, 'f', -1, 64))
	if unit != "" {
		b.WriteByte(' ')
		b.WriteString(unit)
	}
	b.WriteByte(')')

	return b.String()
}
