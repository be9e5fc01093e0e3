package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the startup configuration shared by the binaries.
type Config struct {
	// Degree is the number of variables N.
	Degree int
	// Addr is the tool server listen address.
	Addr string
	// CachePath is the sqlite product cache file; empty keeps the cache in memory.
	CachePath string
	// PlotDir is where sigma-plot writes its HTML page.
	PlotDir string
}

const (
	DefaultDegree = 3
	DefaultAddr   = ":8080"
)

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads SIGMA_DEGREE, SIGMA_ADDR, SIGMA_CACHE_PATH and SIGMA_PLOT_DIR.
// Range checking of Degree is left to gosigma.NewRing.
func Load() (Config, error) {
	cfg := Config{
		Degree:    DefaultDegree,
		Addr:      getEnv("SIGMA_ADDR", DefaultAddr),
		CachePath: os.Getenv("SIGMA_CACHE_PATH"),
		PlotDir:   getEnv("SIGMA_PLOT_DIR", "."),
	}
	if v := os.Getenv("SIGMA_DEGREE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("SIGMA_DEGREE: %w", err)
		}
		cfg.Degree = n
	}
	return cfg, nil
}
