package main

import (
	"fmt"
	"strings"

	"github.com/restlight-dev/restlight"
	"github.com/restlight-dev/restlight/pkg/endpoint"
	"github.com/restlight-dev/restlight/pkg/infer"
)

// demoUser is the record served by the demo routes.
type demoUser struct {
	ID     int
	Name   string
	Active bool
}

// Fields implements infer.Fielder.
func (u demoUser) Fields() []infer.Field {
	return []infer.Field{
		{Name: "id", Value: u.ID},
		{Name: "name", Value: u.Name},
		{Name: "active", Value: u.Active},
	}
}

var demoUsers = []demoUser{
	{ID: 1, Name: "Ada", Active: true},
	{ID: 2, Name: "Brendan", Active: false},
	{ID: 3, Name: "Grace", Active: true},
}

// registerDemoRoutes fills the table with a small read-only user
// service. The literal "users/active" route is registered before
// "users/(id)" so it wins the overlap.
func registerDemoRoutes(app *restlight.App) {
	app.Register("api", listUsers, "users")

	app.Register("api", activeUsers, "users/active")

	app.Register("api", getUser, "users/(id)",
		endpoint.PathParam("id", endpoint.TypeInt))

	app.Register("api", searchUsers, "users/search/(limit)",
		endpoint.PathParam("limit", endpoint.TypeInt),
		endpoint.QueryParam("q", endpoint.TypeString))

	app.Register("status", statusHandler, "/")
}

func listUsers(args ...any) (any, error) {
	return demoUsers, nil
}

func activeUsers(args ...any) (any, error) {
	var out []demoUser
	for _, u := range demoUsers {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func getUser(args ...any) (any, error) {
	id := args[0].(int)
	for _, u := range demoUsers {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %d not found", id)
}

func searchUsers(args ...any) (any, error) {
	limit := args[0].(int)
	q := args[1].(string)

	var out []demoUser
	for _, u := range demoUsers {
		if len(out) >= limit {
			break
		}
		if q == "" || strings.Contains(strings.ToLower(u.Name), strings.ToLower(q)) {
			out = append(out, u)
		}
	}
	return map[string]any{"query": q, "results": out}, nil
}

func statusHandler(args ...any) (any, error) {
	return map[string]any{"ok": true, "users": len(demoUsers)}, nil
}
