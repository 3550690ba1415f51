package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
http:
  address: ":3000"
database:
  host: "db"
  port: 5432
  user: "trip"
  password: "secret"
  name: "tripbooking"
  ssl_mode: "disable"
upload:
  max_size_mb: 32
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTP.Address)
	assert.Equal(t, "host=db port=5432 user=trip password=secret dbname=tripbooking sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "uploads", cfg.Upload.Dir, "upload dir defaults when omitted")
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxSizeBytes())
}

func TestLoadConfig_missingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestUploadConfigDefaultCap(t *testing.T) {
	assert.Equal(t, int64(64<<20), UploadConfig{}.MaxSizeBytes())
}
