package recipes

import "testing"

func TestNewEndpoints_TrimsAddress(t *testing.T) {
	cases := []struct {
		name    string
		address string
		want    string
	}{
		{"plain", "http://localhost:8080", "http://localhost:8080/api/recipes"},
		{"trailing_slash", "http://localhost:8080/", "http://localhost:8080/api/recipes"},
		{"whitespace", "  http://localhost:8080  ", "http://localhost:8080/api/recipes"},
		{"malformed_passes_through", "not a url", "not a url/api/recipes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewEndpoints(tc.address).Recipes()
			if got != tc.want {
				t.Fatalf("Recipes() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEndpoints_WeeklyPlanEmbedsDate(t *testing.T) {
	e := NewEndpoints("http://localhost:8080")
	got := e.WeeklyPlan("2025-01-06")
	want := "http://localhost:8080/api/weeks/2025-01-06/plan"
	if got != want {
		t.Fatalf("WeeklyPlan() = %q, want %q", got, want)
	}
}

func TestEndpoints_DerivedFromAddressOnly(t *testing.T) {
	a := NewEndpoints("http://a")
	b := NewEndpoints("http://b")
	if a.Recipes() == b.Recipes() {
		t.Fatal("endpoints for different addresses should differ")
	}
	if a.Base() != "http://a" || b.Base() != "http://b" {
		t.Fatalf("Base() = %q / %q, want inputs preserved", a.Base(), b.Base())
	}
}
