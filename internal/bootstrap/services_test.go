package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CraftMarket_Go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           9090,
		APIKey:         "k",
		TrustedProxies: []string{"10.0.0.1"},
		RequestTimeout: 3 * time.Second,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		ServiceName:    "craftmarket",
		Version:        "1.0.0",
		CostMaxLayers:  3,
		JobCacheSize:   8,
		JobCacheTTL:    time.Minute,
	}
}

func TestInitializeServices(t *testing.T) {
	svcs := InitializeServices(testConfig(), InitializeRepositories(nil))

	assert.NotNil(t, svcs.Crafting)
	assert.NotNil(t, svcs.Bank)
	assert.NotNil(t, svcs.Jobs)
	assert.NotNil(t, svcs.Catalog)
	assert.NotNil(t, svcs.Pricing)
}

func TestServerOptions(t *testing.T) {
	opts := ServerOptions(testConfig())

	assert.Equal(t, 9090, opts.Port)
	assert.Equal(t, "k", opts.APIKey)
	assert.Equal(t, []string{"10.0.0.1"}, opts.TrustedProxies)
	assert.Equal(t, 3*time.Second, opts.RequestTimeout)
	assert.Equal(t, 5.0, opts.RateLimitRPS)
	assert.Equal(t, 10, opts.RateLimitBurst)
	assert.Equal(t, "1.0.0", opts.Version)
}
