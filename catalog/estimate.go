package catalog

// Minutes from kitchen to door per area.
var travelMinutes = map[string]int{
	Central: 15,
	North:   25,
	South:   25,
}

const (
	defaultTravelMinutes = 30
	bulkItemThreshold    = 5
)

// EstimateDeliveryMinutes is the slowest dish's prep time plus travel for the
// area, plus one minute for every item beyond the fifth.
func EstimateDeliveryMinutes(area string, prepTimes []int, totalItems int) int {
	slowest := 0
	for _, p := range prepTimes {
		if p > slowest {
			slowest = p
		}
	}

	travel, ok := travelMinutes[area]
	if !ok {
		travel = defaultTravelMinutes
	}

	extra := 0
	if totalItems > bulkItemThreshold {
		extra = totalItems - bulkItemThreshold
	}

	return slowest + travel + extra
}
