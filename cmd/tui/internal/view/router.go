package view

import "strings"

// Route is a screen the client can show.
type Route int

const (
	RouteLogin Route = iota
	RouteRegister
	RouteDashboard
	RouteContracts
	RouteProperties
	RouteNotFound
)

var routePaths = map[string]Route{
	"/login":      RouteLogin,
	"/register":   RouteRegister,
	"/":           RouteDashboard,
	"/dashboard":  RouteDashboard,
	"/contracts":  RouteContracts,
	"/properties": RouteProperties,
}

// Path is the canonical path of the route.
func (r Route) Path() string {
	switch r {
	case RouteLogin:
		return "/login"
	case RouteRegister:
		return "/register"
	case RouteDashboard:
		return "/dashboard"
	case RouteContracts:
		return "/contracts"
	case RouteProperties:
		return "/properties"
	}

	return "/404"
}

// Protected reports whether the route needs a session.
func (r Route) Protected() bool {
	switch r {
	case RouteDashboard, RouteContracts, RouteProperties:
		return true
	}

	return false
}

// ParseRoute maps a path to its route. Unknown paths map to RouteNotFound.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if r, ok := routePaths[path]; ok {
		return r
	}

	return RouteNotFound
}

// Resolve applies the route guard: protected routes send anonymous users to
// the login screen, and signed-in users skip the login and register screens.
func Resolve(path string, authenticated bool) Route {
	r := ParseRoute(path)

	switch {
	case r.Protected() && !authenticated:
		return RouteLogin
	case (r == RouteLogin || r == RouteRegister) && authenticated:
		return RouteDashboard
	}

	return r
}
