package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	Log       LogConfig
	Espn      EspnConfig
	Upstream  UpstreamConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Lookup    LookupConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
}

// LogConfig controls log output.
type LogConfig struct {
	Level   string
	Format  string
	Version string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		Log:       loadLog(),
		Espn:      loadEspn(),
		Upstream:  loadUpstream(),
		Cache:     loadCache(),
		RateLimit: loadRateLimit(),
		Lookup:    loadLookup(),
		CORS:      loadCORS(),
		Metrics:   loadMetrics(),
	}
}

func loadLog() LogConfig {
	return LogConfig{
		Level:   envOrDefault(envLogLevel, defaultLogLevel),
		Format:  envOrDefault(envLogFormat, defaultLogFormat),
		Version: envOrDefault(envServiceVersion, defaultServiceVersion),
	}
}
