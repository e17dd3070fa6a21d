package routing

import (
	"testing"

	"fikrswap-academy-be/internal/authstate"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		status authstate.Status
		path   string
		want   Decision
	}{
		// Resolving status defers everything, protected or not.
		{"resolving protected", authstate.StatusAuthenticating, "/dashboard", Defer},
		{"resolving public", authstate.StatusAuthenticating, "/courses", Defer},
		{"resolving login", authstate.StatusAuthenticating, "/login", Defer},

		// Signed out.
		{"guest home", authstate.StatusUnauthenticated, "/", Allow},
		{"guest course detail", authstate.StatusUnauthenticated, "/courses/abc", Allow},
		{"guest curriculum", authstate.StatusUnauthenticated, "/courses/abc/curriculum", RedirectToLogin},
		{"guest live classes", authstate.StatusUnauthenticated, "/live-classes", RedirectToLogin},
		{"guest dashboard", authstate.StatusUnauthenticated, "/dashboard", RedirectToLogin},
		{"guest login", authstate.StatusUnauthenticated, "/login", Allow},
		{"guest signup", authstate.StatusUnauthenticated, "/signup", Allow},

		// Signed in.
		{"member home", authstate.StatusAuthenticated, "/", Allow},
		{"member curriculum", authstate.StatusAuthenticated, "/courses/abc/curriculum", Allow},
		{"member live classes", authstate.StatusAuthenticated, "/live-classes", Allow},
		{"member dashboard", authstate.StatusAuthenticated, "/dashboard", Allow},
		{"member login", authstate.StatusAuthenticated, "/login", RedirectToHome},
		{"member signup", authstate.StatusAuthenticated, "/signup", RedirectToHome},

		// Trailing slashes normalize away.
		{"guest dashboard slash", authstate.StatusUnauthenticated, "/dashboard/", RedirectToLogin},
		{"member login slash", authstate.StatusAuthenticated, "/login/", RedirectToHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.status, tt.path))
		})
	}
}

func TestIsProtected(t *testing.T) {
	assert.True(t, IsProtected("/dashboard"))
	assert.True(t, IsProtected("/live-classes"))
	assert.True(t, IsProtected("/courses/550e8400-e29b-41d4-a716-446655440000/curriculum"))

	assert.False(t, IsProtected("/"))
	assert.False(t, IsProtected("/courses"))
	assert.False(t, IsProtected("/courses/abc"))
	assert.False(t, IsProtected("/courses/abc/reviews"))
	assert.False(t, IsProtected("/login"))
}

// Redirect targets must themselves resolve to Allow so a decision can
// never bounce the visitor between two redirects.
func TestRedirectTargetsNeverLoop(t *testing.T) {
	for _, status := range []authstate.Status{authstate.StatusUnauthenticated, authstate.StatusAuthenticated} {
		for _, path := range []string{"/", "/login", "/signup", "/dashboard", "/live-classes", "/courses/abc/curriculum"} {
			switch Decide(status, path) {
			case RedirectToLogin:
				assert.Equal(t, Allow, Decide(status, LoginPath), "login must be reachable for %s", status)
			case RedirectToHome:
				assert.Equal(t, Allow, Decide(status, HomePath), "home must be reachable for %s", status)
			}
		}
	}
}
