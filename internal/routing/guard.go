package routing

import (
	"strings"

	"fikrswap-academy-be/internal/authstate"
)

type Decision string

const (
	// Allow renders the requested view.
	Allow Decision = "allow"
	// RedirectToLogin sends the visitor to /login.
	RedirectToLogin Decision = "redirect_login"
	// RedirectToHome sends an already signed-in visitor away from the
	// auth forms.
	RedirectToHome Decision = "redirect_home"
	// Defer renders a blocking loading state; no redirect has been
	// decided yet because auth status is still resolving.
	Defer Decision = "defer"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Auth form paths are always exempt from the authentication requirement
// so a redirect target never re-triggers the redirect that produced it.
var authExemptPaths = map[string]bool{
	"/login":  true,
	"/signup": true,
}

var protectedPaths = map[string]bool{
	"/dashboard":    true,
	"/live-classes": true,
}

// IsProtected reports whether the path requires an authenticated
// session. Course curriculum views (/courses/:id/curriculum) are
// protected; the course detail page itself is not.
func IsProtected(path string) bool {
	path = normalize(path)
	if protectedPaths[path] {
		return true
	}
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) == 3 && segments[0] == "courses" && segments[2] == "curriculum" {
		return true
	}
	return false
}

func IsAuthExempt(path string) bool {
	return authExemptPaths[normalize(path)]
}

// Decide evaluates one navigation against the current auth status. Pure;
// called on every navigation.
func Decide(status authstate.Status, path string) Decision {
	if status == authstate.StatusAuthenticating {
		return Defer
	}

	if IsAuthExempt(path) {
		if status == authstate.StatusAuthenticated {
			return RedirectToHome
		}
		return Allow
	}

	if IsProtected(path) && status != authstate.StatusAuthenticated {
		return RedirectToLogin
	}

	return Allow
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
