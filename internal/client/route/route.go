// Package route decides which screen a navigation attempt may show, from the
// session state alone. It keeps no state of its own.
package route

import "strings"

// Route is one of the four screens, identified by its path.
type Route string

const (
	SignUp        Route = "/"
	SignIn        Route = "/signin"
	Configuration Route = "/configuration"
	Dashboard     Route = "/dashboard"
)

// Parse maps a path to its Route. Unknown paths resolve to SignUp.
func Parse(path string) Route {
	p := strings.TrimSpace(path)
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	switch Route(p) {
	case SignIn, Configuration, Dashboard:
		return Route(p)
	}
	return SignUp
}

func (r Route) String() string {
	return string(r)
}

// requiresAuth reports whether r is only for signed-in users.
func (r Route) requiresAuth() bool {
	return r == Configuration || r == Dashboard
}

// publicOnly reports whether r is only for signed-out users.
func (r Route) publicOnly() bool {
	return r == SignUp || r == SignIn
}

// Decision is the outcome of a navigation attempt.
type Decision int

const (
	Allow Decision = iota
	RedirectSignUp
	RedirectConfiguration
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectSignUp:
		return "redirect-to-signup"
	case RedirectConfiguration:
		return "redirect-to-configuration"
	case RedirectDashboard:
		return "redirect-to-dashboard"
	}
	return "unknown"
}

// Target returns the route a redirect leads to. For Allow it returns requested.
func (d Decision) Target(requested Route) Route {
	switch d {
	case RedirectSignUp:
		return SignUp
	case RedirectConfiguration:
		return Configuration
	case RedirectDashboard:
		return Dashboard
	}
	return requested
}

// Decide applies the navigation rules in priority order.
func Decide(isAuthenticated, hasConfigKey bool, r Route) Decision {
	switch {
	case r.requiresAuth() && !isAuthenticated:
		return RedirectSignUp
	case r == Dashboard && !hasConfigKey:
		return RedirectConfiguration
	case r.publicOnly() && isAuthenticated:
		if hasConfigKey {
			return RedirectDashboard
		}
		return RedirectConfiguration
	}
	return Allow
}

// State is the part of the session the guard looks at.
type State interface {
	IsAuthenticated() bool
	HasConfigKey() bool
}

// Guard evaluates navigation attempts against a live session state.
type Guard struct {
	state State
}

func NewGuard(state State) *Guard {
	return &Guard{state: state}
}

// Resolve returns the route that is actually shown for a request to r and
// the decision that led there. A redirect target is always allowed for the
// same state, so one step is enough.
func (g *Guard) Resolve(r Route) (Route, Decision) {
	d := Decide(g.state.IsAuthenticated(), g.state.HasConfigKey(), r)
	return d.Target(r), d
}

// Allowed reports whether r can be shown without a redirect.
func (g *Guard) Allowed(r Route) bool {
	_, d := g.Resolve(r)
	return d == Allow
}
