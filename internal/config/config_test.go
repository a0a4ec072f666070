package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "localhost"
port = 5432
user = "parking"
password = "from-file"
dbname = "parking"

[address_service]
url = "https://viacep.com.br/ws"

[events]
driver = "kafka"
kafka_brokers = ["localhost:9092"]

[parking]
timezone = "America/Sao_Paulo"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaultsAndEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "parking.tickets", cfg.Events.KafkaTopic)
	assert.Equal(t, 300, cfg.Redis.SpentTTL)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoadRejectsUnknownEventsDriver(t *testing.T) {
	content := `
[database]
host = "localhost"
dbname = "parking"

[address_service]
url = "http://localhost"

[events]
driver = "carrier-pigeon"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	content := `
[database]
host = "localhost"
dbname = "parking"

[address_service]
url = "http://localhost"

[parking]
timezone = "Mars/Olympus"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
