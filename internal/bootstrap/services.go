package bootstrap

import (
	"github.com/osse101/CraftMarket_Go/internal/bank"
	"github.com/osse101/CraftMarket_Go/internal/catalog"
	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/crafting"
	"github.com/osse101/CraftMarket_Go/internal/job"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
	"github.com/osse101/CraftMarket_Go/internal/server"
)

// InitializeServices wires repositories into the domain services. A single
// pricing service backs every consumer.
func InitializeServices(cfg *config.Config, repos *Repositories) server.Services {
	prices := pricing.NewService(repos.Price)
	craftingSvc := crafting.NewService(repos.Recipe, prices, costing.NewEstimator(cfg.CostMaxLayers))

	return server.Services{
		Crafting: craftingSvc,
		Bank:     bank.NewService(repos.Bank, repos.Recipe, prices),
		Jobs: job.NewService(repos.Job, repos.Recipe, craftingSvc, prices, job.Options{
			CacheSize: cfg.JobCacheSize,
			CacheTTL:  cfg.JobCacheTTL,
		}),
		Catalog: catalog.NewService(repos.Catalog),
		Pricing: prices,
	}
}

// ServerOptions maps configuration onto HTTP server options
func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}
}
