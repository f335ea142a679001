package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_ListRecipes(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotAccept, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Soup"}]`))
	}))
	t.Cleanup(server.Close)

	payload, err := NewClient().ListRecipes(testContext(t), server.URL)
	if err != nil {
		t.Fatalf("ListRecipes returned error: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/recipes" {
		t.Fatalf("request = %s %s, want GET /api/recipes", gotMethod, gotPath)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID header missing")
	}

	var items []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(payload, &items); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Soup" {
		t.Fatalf("payload = %s, want one Soup item", payload)
	}
}

func TestClient_CreateRecipePostsSamplePayload(t *testing.T) {
	t.Parallel()

	var gotMethod, gotContentType string
	var gotBody Recipe
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	t.Cleanup(server.Close)

	payload, err := NewClient().CreateRecipe(testContext(t), server.URL, SampleRecipe())
	if err != nil {
		t.Fatalf("CreateRecipe returned error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody.Name == "" || gotBody.Steps == "" || len(gotBody.Ingredients) == 0 {
		t.Fatalf("body = %#v, want populated sample recipe", gotBody)
	}
	for _, ing := range gotBody.Ingredients {
		if ing.Name == "" || ing.Quantity <= 0 || ing.Unit == "" {
			t.Fatalf("ingredient = %#v, want name, quantity and unit set", ing)
		}
	}
	if string(payload) != `{"id":7}` {
		t.Fatalf("payload = %s, want created id", payload)
	}
}

func TestClient_WeeklyPlanEmbedsDateInPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"days":[]}`))
	}))
	t.Cleanup(server.Close)

	if _, err := NewClient().WeeklyPlan(testContext(t), server.URL, SamplePlanDate); err != nil {
		t.Fatalf("WeeklyPlan returned error: %v", err)
	}
	want := "/api/weeks/" + SamplePlanDate + "/plan"
	if gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
}

func TestClient_NonSuccessStatusCarriesBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))
	t.Cleanup(server.Close)

	_, err := NewClient().ListRecipes(testContext(t), server.URL)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.Status != http.StatusNotFound || statusErr.Body != "not found" {
		t.Fatalf("StatusError = %#v, want 404/not found", statusErr)
	}
	msg := err.Error()
	if !strings.Contains(msg, "404") || !strings.Contains(msg, "not found") {
		t.Fatalf("message = %q, want status and body embedded", msg)
	}
}

func TestClient_InvalidJSONBodyIsDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	t.Cleanup(server.Close)

	_, err := NewClient().ListRecipes(testContext(t), server.URL)
	if err == nil {
		t.Fatal("expected decode error for non-JSON 200 body")
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("error = %v, want decode response wrap", err)
	}
}

func TestClient_TransportErrorSurfaces(t *testing.T) {
	t.Parallel()

	// Reserve a port, then close it so the address is unreachable.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := NewClient().ListRecipes(testContext(t), addr)
	if err == nil {
		t.Fatal("expected transport error for closed server")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want transport error, not StatusError", err)
	}
}

func TestStatusError_EmptyBody(t *testing.T) {
	err := &StatusError{Status: 500}
	if got := err.Error(); got != "status 500" {
		t.Fatalf("Error() = %q, want status only", got)
	}
}
