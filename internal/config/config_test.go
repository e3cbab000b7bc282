package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timecard/internal/repository"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"TIMECARD_STORE", "TIMECARD_DB", "TIMECARD_ADDR", "TIMECARD_LOG_LEVEL", "TIMECARD_TZ", "TIMECARD_EMPLOYEE_DELETE_COMPLETED", "TIMECARD_EMPLOYEE"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EmployeeDeleteCompleted)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("TIMECARD_STORE", "BOLT")
	t.Setenv("TIMECARD_DB", "/tmp/x.bolt")
	t.Setenv("TIMECARD_ADDR", ":9090")
	t.Setenv("TIMECARD_LOG_LEVEL", "debug")
	t.Setenv("TIMECARD_TZ", "America/Denver")
	t.Setenv("TIMECARD_EMPLOYEE_DELETE_COMPLETED", "true")
	t.Setenv("TIMECARD_EMPLOYEE", "emp-1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreBolt, cfg.Store)
	assert.Equal(t, "/tmp/x.bolt", cfg.DB)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.EmployeeDeleteCompleted)
	assert.Equal(t, "emp-1", cfg.Employee)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Denver", loc.String())
}

func TestLoadConfig_RejectsBadDeleteCompleted(t *testing.T) {
	t.Setenv("TIMECARD_EMPLOYEE_DELETE_COMPLETED", "yes")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIMECARD_EMPLOYEE_DELETE_COMPLETED")
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store = "mongo"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Store = StorePostgres
	assert.Error(t, cfg.Validate(), "postgres needs a DSN")

	cfg = DefaultConfig()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.TZ = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLogLevel("trace")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nTIMECARD_ADDR=:7000\nexport TIMECARD_TZ=\"UTC\"\nTIMECARD_STORE=bolt\nnot a pair\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("TIMECARD_STORE", "sqlite")
	os.Unsetenv("TIMECARD_ADDR")
	os.Unsetenv("TIMECARD_TZ")
	t.Cleanup(func() {
		os.Unsetenv("TIMECARD_ADDR")
		os.Unsetenv("TIMECARD_TZ")
	})

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, ":7000", os.Getenv("TIMECARD_ADDR"))
	assert.Equal(t, "UTC", os.Getenv("TIMECARD_TZ"))
	assert.Equal(t, "sqlite", os.Getenv("TIMECARD_STORE"), "existing variables win")

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestOpenStore(t *testing.T) {
	for _, driver := range []string{StoreSQLite, StoreBolt} {
		t.Run(driver, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Store = driver
			cfg.DB = filepath.Join(t.TempDir(), "nested", "store")

			store, err := OpenStore(cfg)
			require.NoError(t, err)
			defer store.Close()

			err = store.Read(context.Background(), func(ctx context.Context, r repository.Repos) error {
				employees, err := r.Employees.List(ctx)
				assert.Empty(t, employees)
				return err
			})
			require.NoError(t, err)
		})
	}
}
