package recipes

import "strings"

// Endpoints maps the three demo operations onto concrete URLs for one backend
// address. It is a pure function of the address: callers rebuild it whenever
// the address changes.
//
// The address is not validated here. A malformed address produces a malformed
// URL, which surfaces as an error when the request is attempted.
type Endpoints struct {
	base string
}

// NewEndpoints derives the endpoint set for the given backend address.
func NewEndpoints(address string) Endpoints {
	trimmed := strings.TrimSpace(address)
	trimmed = strings.TrimRight(trimmed, "/")
	return Endpoints{base: trimmed}
}

// Base returns the backend address the endpoints were derived from.
func (e Endpoints) Base() string {
	return e.base
}

// Recipes returns the URL for listing and creating recipes.
func (e Endpoints) Recipes() string {
	return e.base + "/api/recipes"
}

// WeeklyPlan returns the URL for fetching the plan of the week containing
// date (YYYY-MM-DD).
func (e Endpoints) WeeklyPlan(date string) string {
	return e.base + "/api/weeks/" + date + "/plan"
}
