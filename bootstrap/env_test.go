package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv(writeEnvFile(t, "ACCESS_TOKEN_SECRET=s3cret\nSERVER_ADDRESS=:9000\nMAX_UPLOAD_MB=5\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9000", env.ServerAddress)
	assert.Equal(t, "s3cret", env.AccessTokenSecret)
	assert.Equal(t, int64(5<<20), env.MaxUploadBytes())
	assert.Equal(t, 10, env.SearchCandidateWindow)
	assert.Equal(t, 10, env.SearchResultLimit)
	assert.Equal(t, 30*time.Second, env.PlayGuardWindow())
	assert.Equal(t, 24*time.Hour, env.AccessTokenExpiry())
	assert.Equal(t, 10*time.Second, env.Timeout())
}

func TestLoadEnvRequiresSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	_, err := LoadEnv(writeEnvFile(t, "SERVER_ADDRESS=:9000\n"))
	assert.Error(t, err)
}

func TestMongoURI(t *testing.T) {
	env := &Env{DBHost: "db", DBPort: "27017"}
	assert.Equal(t, "mongodb://db:27017", mongoURI(env))

	env.DBUser, env.DBPass = "root", "pw"
	assert.Equal(t, "mongodb://root:pw@db:27017", mongoURI(env))
}
