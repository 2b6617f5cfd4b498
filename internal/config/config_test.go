package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_PATH", "REDIS_ADDR", "REDIS_DB", "PASSWORD_HASHING", "QUEUE_PURGE_SCHEDULE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "dinewise.db", cfg.Database.DSN())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "plain", cfg.Auth.PasswordHashing)
	assert.Equal(t, "0 0 0 * * *", cfg.Tasks.QueuePurgeSchedule)
}

func TestLoadPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "dine")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "dinewise")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5433 user=dine password=secret dbname=dinewise sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadMySQL(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "dine")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dine:secret@tcp(db:3306)/dinewise?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.DSN())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "DB_DRIVER", "oracle"},
		{"bad redis db", "REDIS_DB", "zero"},
		{"bad hashing", "PASSWORD_HASHING", "md5"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "soon"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
