package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/middleware"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry(&WaitForDBCommand{}, &TokenCommand{}, &HealthCheckCommand{})

	cmd, ok := registry.Get("token")
	require.True(t, ok)
	assert.Equal(t, "token", cmd.Name())

	_, ok = registry.Get("deploy")
	assert.False(t, ok)

	var names []string
	for _, c := range registry.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"health-check", "token", "wait-for-db"}, names)

	var help bytes.Buffer
	registry.PrintHelp(&help)
	assert.Contains(t, help.String(), "Usage: devtool")
	assert.Less(t, strings.Index(help.String(), "health-check"), strings.Index(help.String(), "wait-for-db"))
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	registry := NewRegistry(&TokenCommand{})

	assert.ErrorIs(t, registry.Dispatch(nil), errNoCommand)
	assert.ErrorContains(t, registry.Dispatch([]string{"deploy"}), `unknown command "deploy"`)
	assert.ErrorContains(t, registry.Dispatch([]string{"token", "-user", "1"}), "token: JWT_SECRET")
}

func TestTokenCommand_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, (&TokenCommand{}).Run([]string{"-user", "0"}))
	assert.ErrorContains(t, (&TokenCommand{}).Run([]string{"-user", "3"}), "JWT_SECRET")
}

func TestTokenCommand_IssuesVerifiableToken(t *testing.T) {
	const secret = "devtool-test-secret"
	auth := middleware.NewAuthenticator(secret)

	token, err := auth.IssueToken(5, time.Minute)
	require.NoError(t, err)

	userID, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)

	t.Setenv("JWT_SECRET", secret)
	assert.NoError(t, (&TokenCommand{}).Run([]string{"-user", "5", "-ttl", "1m"}))
}
