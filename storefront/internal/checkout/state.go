package checkout

// State is a step of the ordering workflow.
type State int

const (
	Idle State = iota
	AreaSelected
	MenuShown
	CartNonEmpty
	Submitting
	Confirmed
)

var stateNames = map[State]string{
	Idle:         "idle",
	AreaSelected: "area_selected",
	MenuShown:    "menu_shown",
	CartNonEmpty: "cart_non_empty",
	Submitting:   "submitting",
	Confirmed:    "confirmed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) acceptsCartChanges() bool {
	return s == MenuShown || s == CartNonEmpty
}
