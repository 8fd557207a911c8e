package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "seafood", cfg.MongoDatabase)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Second, cfg.MapLookupDelay)
	assert.Equal(t, 2*time.Second, cfg.PaymentRedirectDelay)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 1.0, cfg.OtelSampleRate)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Taipei", loc.String())
}

func TestLoadEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PAYMENT_REDIRECT_DELAY", "500ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 500*time.Millisecond, cfg.PaymentRedirectDelay)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seafood.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nkafka_topic: shop-orders\nmap_lookup_delay: 250ms\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "shop-orders", cfg.KafkaTopic)
	assert.Equal(t, 250*time.Millisecond, cfg.MapLookupDelay)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SEAFOOD_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("SEAFOOD_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SEAFOOD_TEST_UNSET", "fallback"))
}
