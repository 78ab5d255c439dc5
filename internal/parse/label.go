package parse

import "strings"

// BuildSuggestedLabel derives the default human-readable title for a load:
// "<userName> <pickup_state|XX> <drop_state|XX> <delivery_date|"">", trimmed.
// Missing states render as the "XX" placeholder so the user sees what still
// needs filling in.
func BuildSuggestedLabel(f Fields, userName string) string {
	if userName == "" {
		userName = "you"
	}
	ps, ds := "XX", "XX"
	if f.PickupState != nil {
		ps = *f.PickupState
	}
	if f.DropState != nil {
		ds = *f.DropState
	}
	date := ""
	if f.DeliveryDate != nil {
		date = *f.DeliveryDate
	}
	return strings.TrimSpace(userName + " " + ps + " " + ds + " " + date)
}
