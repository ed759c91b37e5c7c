package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_FileAndDefaults(t *testing.T) {
	p := writeYAML(t, `
app:
  http:
    port: 8080
jwt:
  secret: from-file
auth:
  admins: [root, ops]
store:
  driver: sqlite
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, 3001, c.App.Admin.Port)
	assert.Equal(t, "from-file", c.JWT.Secret)
	assert.Equal(t, 15, c.JWT.AccessTokenTTLMin)
	assert.Equal(t, []string{"root", "ops"}, c.Auth.Admins)
	assert.Equal(t, 5, c.Auth.LoginLimit)
	assert.Equal(t, 300, c.Auth.LoginWindowSec)
	assert.Empty(t, c.App.TrustedProxies)
	assert.Equal(t, "sqlite", c.Store.Driver)
	assert.Equal(t, "./data", c.Store.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	p := writeYAML(t, "jwt:\n  secret: from-file\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("APP_APP_HTTP_PORT", "9000")

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.JWT.Secret)
	assert.True(t, c.Auth.Disabled)
	assert.Equal(t, 9000, c.App.HTTP.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeYAML(t, "app:\n  name: x\n"))
	assert.ErrorContains(t, err, "jwt.secret")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
