package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeState struct {
	auth bool
	key  bool
}

func (s fakeState) IsAuthenticated() bool { return s.auth }
func (s fakeState) HasConfigKey() bool    { return s.key }

func TestDecide_Table(t *testing.T) {
	tests := []struct {
		name string
		auth bool
		key  bool
		r    Route
		want Decision
	}{
		{"anonymous dashboard", false, false, Dashboard, RedirectSignUp},
		{"anonymous configuration", false, false, Configuration, RedirectSignUp},
		{"anonymous dashboard with stale key", false, true, Dashboard, RedirectSignUp},
		{"anonymous signup", false, false, SignUp, Allow},
		{"anonymous signin", false, false, SignIn, Allow},
		{"no key dashboard", true, false, Dashboard, RedirectConfiguration},
		{"no key configuration", true, false, Configuration, Allow},
		{"no key signup", true, false, SignUp, RedirectConfiguration},
		{"no key signin", true, false, SignIn, RedirectConfiguration},
		{"key signin", true, true, SignIn, RedirectDashboard},
		{"key signup", true, true, SignUp, RedirectDashboard},
		{"key dashboard", true, true, Dashboard, Allow},
		{"key configuration", true, true, Configuration, Allow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.auth, tc.key, tc.r), tc.want.String())
		})
	}
}

func TestGuard_RedirectTargetsAreAllowed(t *testing.T) {
	for _, st := range []fakeState{{false, false}, {false, true}, {true, false}, {true, true}} {
		g := NewGuard(st)
		for _, r := range []Route{SignUp, SignIn, Configuration, Dashboard} {
			shown, _ := g.Resolve(r)
			assert.True(t, g.Allowed(shown), "state %+v request %s shows %s", st, r, shown)
		}
	}
}

func TestGuard_Resolve(t *testing.T) {
	shown, d := NewGuard(fakeState{auth: true}).Resolve(Dashboard)
	assert.Equal(t, Configuration, shown)
	assert.Equal(t, RedirectConfiguration, d)

	shown, d = NewGuard(fakeState{}).Resolve(SignIn)
	assert.Equal(t, SignIn, shown)
	assert.Equal(t, Allow, d)
}

func TestParse(t *testing.T) {
	tests := map[string]Route{
		"/":               SignUp,
		"":                SignUp,
		"/signin":         SignIn,
		"/signin/":        SignIn,
		" /configuration": Configuration,
		"/dashboard":      Dashboard,
		"/admin":          SignUp,
		"dashboard":       SignUp,
	}
	for in, want := range tests {
		assert.Equal(t, want, Parse(in), in)
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "redirect-to-dashboard", RedirectDashboard.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
