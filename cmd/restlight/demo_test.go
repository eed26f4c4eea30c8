package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restlight-dev/restlight"
)

func demoServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := restlight.New()
	registerDemoRoutes(app)
	ts := httptest.NewServer(app.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestDemoGetUser(t *testing.T) {
	ts := demoServer(t)

	status, body := get(t, ts, "/api/users/1")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}
	if body != `{"id":1,"name":"Ada","active":true}` {
		t.Errorf("body = %s", body)
	}
}

func TestDemoListUsers(t *testing.T) {
	ts := demoServer(t)

	status, body := get(t, ts, "/api/users")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	want := `[{"id":1,"name":"Ada","active":true},{"id":2,"name":"Brendan","active":false},{"id":3,"name":"Grace","active":true}]`
	if body != want {
		t.Errorf("body = %s", body)
	}
}

func TestDemoLiteralBeatsPlaceholder(t *testing.T) {
	ts := demoServer(t)

	status, body := get(t, ts, "/api/users/active")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}
	// "users/active" is registered before "users/(id)", so the literal
	// route wins instead of failing int coercion on "active".
	if body != `[{"id":1,"name":"Ada","active":true},{"id":3,"name":"Grace","active":true}]` {
		t.Errorf("body = %s", body)
	}
}

func TestDemoSearch(t *testing.T) {
	ts := demoServer(t)

	status, body := get(t, ts, "/api/users/search/2?q=a")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}
	want := `{"query":"a","results":[{"id":1,"name":"Ada","active":true},{"id":3,"name":"Grace","active":true}]}`
	if body != want {
		t.Errorf("body = %s", body)
	}

	if status, _ := get(t, ts, "/api/users/search/2"); status != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", status)
	}
}

func TestDemoStatusOutcomes(t *testing.T) {
	ts := demoServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/status", http.StatusOK},
		{"/api/users/999", http.StatusInternalServerError}, // handler error
		{"/api/users/abc", http.StatusBadRequest},          // coercion failure
		{"/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if status, body := get(t, ts, tt.path); status != tt.want {
				t.Errorf("status = %d, want %d (body %s)", status, tt.want, body)
			}
		})
	}
}
