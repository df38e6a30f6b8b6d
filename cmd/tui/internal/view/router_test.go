package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/leasedesk/cmd/tui/internal/view"
)

func TestResolve(t *testing.T) {
	type testCase struct {
		name          string
		path          string
		authenticated bool
		want          view.Route
	}

	tests := []testCase{
		{name: "root signed in", path: "/", authenticated: true, want: view.RouteDashboard},
		{name: "root anonymous", path: "/", want: view.RouteLogin},
		{name: "contracts anonymous", path: "/contracts", want: view.RouteLogin},
		{name: "contracts signed in", path: "/contracts", authenticated: true, want: view.RouteContracts},
		{name: "trailing slash", path: "/contracts/", authenticated: true, want: view.RouteContracts},
		{name: "properties signed in", path: "/properties", authenticated: true, want: view.RouteProperties},
		{name: "login anonymous", path: "/login", want: view.RouteLogin},
		{name: "login signed in", path: "/login", authenticated: true, want: view.RouteDashboard},
		{name: "register anonymous", path: "/register", want: view.RouteRegister},
		{name: "register signed in", path: "/register", authenticated: true, want: view.RouteDashboard},
		{name: "unknown anonymous", path: "/nope", want: view.RouteNotFound},
		{name: "unknown signed in", path: "/nope", authenticated: true, want: view.RouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.Resolve(tt.path, tt.authenticated))
		})
	}
}

func TestRoute_Path(t *testing.T) {
	for _, r := range []view.Route{view.RouteLogin, view.RouteRegister, view.RouteDashboard, view.RouteContracts, view.RouteProperties} {
		assert.Equal(t, r, view.ParseRoute(r.Path()))
	}

	assert.Equal(t, view.RouteNotFound, view.ParseRoute(view.RouteNotFound.Path()))
}

func TestParseAmount(t *testing.T) {
	type testCase struct {
		in      string
		want    float64
		wantErr bool
	}

	tests := []testCase{
		{in: "550.000,50", want: 550000.5},
		{in: "550000", want: 550000},
		{in: "550000.50", want: 550000.5},
		{in: "550.000", want: 550000},
		{in: "1.250.000", want: 1250000},
		{in: "$ 900", want: 900},
		{in: "1.5", want: 1.5},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := view.ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
