// Package catalog holds the delivery areas, the demo menu used for seeding and
// offline browsing, and the delivery-time estimate shared by the order service
// and the offline checkout.
package catalog

import "strings"

const (
	Central = "Central"
	North   = "North"
	South   = "South"
)

// Areas is the closed set of delivery zones, in display order.
var Areas = []string{Central, North, South}

// IsArea reports whether area names a known delivery zone. Matching is exact.
func IsArea(area string) bool {
	for _, a := range Areas {
		if a == area {
			return true
		}
	}
	return false
}

// ParseAreas splits a comma separated list and keeps known zones only.
// An empty list selects every area.
func ParseAreas(list string) []string {
	if strings.TrimSpace(list) == "" {
		return append([]string(nil), Areas...)
	}

	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(list, ",") {
		area := strings.TrimSpace(part)
		if IsArea(area) && !seen[area] {
			seen[area] = true
			out = append(out, area)
		}
	}
	return out
}
