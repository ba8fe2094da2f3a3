package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"NEARBUY_APP_NAME":                os.Getenv("NEARBUY_APP_NAME"),
		"NEARBUY_APP_ENV":                 os.Getenv("NEARBUY_APP_ENV"),
		"NEARBUY_APP_PORT":                os.Getenv("NEARBUY_APP_PORT"),
		"NEARBUY_DATABASE_HOST":           os.Getenv("NEARBUY_DATABASE_HOST"),
		"NEARBUY_DATABASE_PORT":           os.Getenv("NEARBUY_DATABASE_PORT"),
		"NEARBUY_DATABASE_USER":           os.Getenv("NEARBUY_DATABASE_USER"),
		"NEARBUY_DATABASE_PASSWORD":       os.Getenv("NEARBUY_DATABASE_PASSWORD"),
		"NEARBUY_DATABASE_DBNAME":         os.Getenv("NEARBUY_DATABASE_DBNAME"),
		"NEARBUY_DATABASE_SSLMODE":        os.Getenv("NEARBUY_DATABASE_SSLMODE"),
		"NEARBUY_DATABASE_MAX_OPEN_CONNS": os.Getenv("NEARBUY_DATABASE_MAX_OPEN_CONNS"),
		"NEARBUY_DATABASE_MAX_IDLE_CONNS": os.Getenv("NEARBUY_DATABASE_MAX_IDLE_CONNS"),
		"NEARBUY_GEO_ENDPOINT":            os.Getenv("NEARBUY_GEO_ENDPOINT"),
		"NEARBUY_GEO_API_KEY":             os.Getenv("NEARBUY_GEO_API_KEY"),
		"NEARBUY_DISCOVERY_PAGE_SIZE":     os.Getenv("NEARBUY_DISCOVERY_PAGE_SIZE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "nearbuy-discovery", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "nearbuy", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 20, cfg.Discovery.PageSize)
		assert.Equal(t, 5, cfg.Discovery.ScrollThreshold)
		assert.Equal(t, 16, cfg.Discovery.LookupConcurrent)
		assert.Equal(t, "en", cfg.Discovery.CollatorLocale)
	})

	t.Run("loads values from environment variables with NEARBUY prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEARBUY_APP_NAME", "test-app")
		os.Setenv("NEARBUY_APP_ENV", "testing")
		os.Setenv("NEARBUY_APP_PORT", "9000")
		os.Setenv("NEARBUY_DATABASE_HOST", "testdb.local")
		os.Setenv("NEARBUY_DATABASE_PORT", "5433")
		os.Setenv("NEARBUY_DATABASE_USER", "testuser")
		os.Setenv("NEARBUY_DATABASE_PASSWORD", "testpass")
		os.Setenv("NEARBUY_DATABASE_DBNAME", "testdb")
		os.Setenv("NEARBUY_DATABASE_SSLMODE", "require")
		os.Setenv("NEARBUY_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("NEARBUY_DATABASE_MAX_IDLE_CONNS", "10")
		os.Setenv("NEARBUY_GEO_API_KEY", "rk_test_123")
		os.Setenv("NEARBUY_DISCOVERY_PAGE_SIZE", "30")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "rk_test_123", cfg.Geo.APIKey)
		assert.Equal(t, 30, cfg.Discovery.PageSize)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEARBUY_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("NEARBUY_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEARBUY_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEARBUY_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"NEARBUY_APP_ENV":           os.Getenv("NEARBUY_APP_ENV"),
		"NEARBUY_DATABASE_PASSWORD": os.Getenv("NEARBUY_DATABASE_PASSWORD"),
		"NEARBUY_DATABASE_SSLMODE":  os.Getenv("NEARBUY_DATABASE_SSLMODE"),
		"NEARBUY_GEO_ENDPOINT":      os.Getenv("NEARBUY_GEO_ENDPOINT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	setValidProductionBase := func() {
		os.Setenv("NEARBUY_APP_ENV", "production")
		os.Setenv("NEARBUY_DATABASE_PASSWORD", "secure-password")
		os.Setenv("NEARBUY_DATABASE_SSLMODE", "require")
		os.Setenv("NEARBUY_GEO_ENDPOINT", "https://routing.example.com")
	}

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("NEARBUY_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("NEARBUY_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("requires geo.endpoint in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("NEARBUY_GEO_ENDPOINT")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "geo.endpoint is required in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		// URL-encoded password should be in the DSN
		assert.Contains(t, dsn, "pass%40word%23123")
	})

	t.Run("handles empty password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.NotEmpty(t, dsn)
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
