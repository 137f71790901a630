package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_KEY", "letmein")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "MEMORY")

	c, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "s3cret", c.App.SecretKey)
	require.Equal(t, "letmein", c.App.AdminKey)
	require.Equal(t, 8081, c.App.Port)
	require.Equal(t, 720*time.Hour, c.App.TokenTTL)
	require.Equal(t, DriverMemory, c.Database.Driver)
	require.Equal(t, "finflix", c.Database.Mongo.Name)
	require.Equal(t, 10*time.Minute, c.RedisClient.TTL)
	require.False(t, c.RedisClient.Enabled)
}

func TestLoadConfig_File(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("MONGO_DB_URL", "")

	body := `{
		"app": {"port": 9000, "secretKey": "from-file", "tokenTTL": "1h"},
		"database": {"driver": "mongo", "mongo": {"uri": "mongodb://db:27017", "name": "catalog"}},
		"logger": {"format": "text", "level": "warn"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config-test.json"), []byte(body), 0o600))

	c, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9000, c.App.Port)
	require.Equal(t, "from-file", c.App.SecretKey)
	require.Equal(t, time.Hour, c.App.TokenTTL)
	require.Equal(t, "mongodb://db:27017", c.Database.Mongo.MongoURI())
	require.Equal(t, "catalog", c.Database.Mongo.Name)
	require.Equal(t, "text", c.Logger.Format)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestMongoURI(t *testing.T) {
	require.Equal(t, "mongodb://localhost:27017", Db{Host: "localhost", Port: "27017"}.MongoURI())
	require.Equal(t, "mongodb://u:p@h:1", Db{Host: "h", Port: "1", User: "u", Password: "p"}.MongoURI())
}

func TestLoadEnvFromFile_DoesNotOverride(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINFLIX_A=file\nFINFLIX_B=file\n"), 0o600))
	t.Setenv("FINFLIX_A", "env")
	t.Setenv("FINFLIX_B", "")
	require.NoError(t, os.Unsetenv("FINFLIX_B"))
	t.Cleanup(func() { _ = os.Unsetenv("FINFLIX_B") })

	LoadEnvFromFile("missing.env", ".env")

	require.Equal(t, "env", os.Getenv("FINFLIX_A"))
	require.Equal(t, "file", os.Getenv("FINFLIX_B"))
}
