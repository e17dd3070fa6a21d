package routing

import "fikrswap-academy-be/internal/authstate"

// CallbackOutcome is where the auth callback view sends the visitor
// after absorbing the return leg of an external OAuth redirect.
type CallbackOutcome struct {
	Target    string
	ShowError bool
	// ErrorDescription carries the provider's error fragment when one
	// was present; empty for the generic failure case.
	ErrorDescription string
}

// ResolveCallback decides the callback navigation. An error fragment in
// the return payload always wins: /login with one error notice, no
// matter what the auth status says. Otherwise the settled status picks
// the destination.
func ResolveCallback(errorFragment string, settled authstate.Status) CallbackOutcome {
	if errorFragment != "" {
		return CallbackOutcome{
			Target:           LoginPath,
			ShowError:        true,
			ErrorDescription: errorFragment,
		}
	}

	if settled == authstate.StatusAuthenticated {
		return CallbackOutcome{Target: HomePath}
	}

	return CallbackOutcome{
		Target:    LoginPath,
		ShowError: true,
	}
}
