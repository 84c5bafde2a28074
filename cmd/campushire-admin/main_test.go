package main

import (
	"testing"

	"github.com/campushire/campushire-web/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFromFlagOrEnv(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("ADMIN_ACCESS_TOKEN", "env-token")
		cred, err := credentialFromFlagOrEnv("flag-token")
		require.NoError(t, err)
		assert.Equal(t, ports.Credential("flag-token"), cred)
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("ADMIN_ACCESS_TOKEN", "env-token")
		cred, err := credentialFromFlagOrEnv("")
		require.NoError(t, err)
		assert.Equal(t, ports.Credential("env-token"), cred)
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv("ADMIN_ACCESS_TOKEN", "")
		_, err := credentialFromFlagOrEnv("")
		assert.Error(t, err)
	})
}

func TestCommandsAreRegistered(t *testing.T) {
	cmds := commands()
	for _, name := range []string{"list-users", "list-jobs", "query"} {
		cmd, ok := cmds[name]
		require.True(t, ok, "command %s missing", name)
		assert.Equal(t, name, cmd.name)
		assert.NotNil(t, cmd.run)
		assert.NotEmpty(t, cmd.description)
	}
}
