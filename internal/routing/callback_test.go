package routing

import (
	"testing"

	"fikrswap-academy-be/internal/authstate"

	"github.com/stretchr/testify/assert"
)

func TestResolveCallbackErrorFragmentWins(t *testing.T) {
	// Even a fully authenticated status loses to an explicit provider
	// error in the return payload.
	for _, status := range []authstate.Status{
		authstate.StatusAuthenticated,
		authstate.StatusUnauthenticated,
		authstate.StatusAuthenticating,
	} {
		outcome := ResolveCallback("access_denied", status)
		assert.Equal(t, LoginPath, outcome.Target, "status %s", status)
		assert.True(t, outcome.ShowError, "status %s", status)
		assert.Equal(t, "access_denied", outcome.ErrorDescription)
	}
}

func TestResolveCallbackSettledAuthenticated(t *testing.T) {
	outcome := ResolveCallback("", authstate.StatusAuthenticated)
	assert.Equal(t, HomePath, outcome.Target)
	assert.False(t, outcome.ShowError)
}

func TestResolveCallbackSettledUnauthenticated(t *testing.T) {
	outcome := ResolveCallback("", authstate.StatusUnauthenticated)
	assert.Equal(t, LoginPath, outcome.Target)
	assert.True(t, outcome.ShowError)
	assert.Empty(t, outcome.ErrorDescription)
}
