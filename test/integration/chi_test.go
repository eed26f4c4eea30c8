package integration_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/restlight-dev/restlight"
	"github.com/restlight-dev/restlight/pkg/endpoint"
	"github.com/restlight-dev/restlight/pkg/infer"
	"github.com/restlight-dev/restlight/pkg/middleware"
)

type testUser struct {
	ID   int
	Name string
}

func (u testUser) Fields() []infer.Field {
	return []infer.Field{
		{Name: "id", Value: u.ID},
		{Name: "name", Value: u.Name},
	}
}

// TestChiRouterIntegration mounts the restlight handler in a chi
// router next to a plain chi route, with the observability middleware
// stacked on top.
func TestChiRouterIntegration(t *testing.T) {
	app := restlight.New()
	app.Register("test", func(args ...any) (any, error) {
		id := args[0].(int)
		return testUser{ID: id, Name: "User" + strconv.Itoa(id)}, nil
	}, "user/(id)", endpoint.PathParam("id", endpoint.TypeInt))

	registry := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(middleware.WithRegistry(registry)))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/*", app.Handler())

	ts := httptest.NewServer(r)
	defer ts.Close()

	t.Run("dispatched route", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/test/user/42")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != `{"id":42,"name":"User42"}` {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("plain chi route unaffected", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/healthz")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("binding failure surfaces through chi", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/test/user/abc")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("metrics exposition", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/metrics")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "restlight_requests_total") {
			t.Error("exposition missing restlight_requests_total")
		}
	})
}
