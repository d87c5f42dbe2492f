package config

// CORSConfig controls cross-origin access for the browser dashboard.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORS() CORSConfig {
	return CORSConfig{
		AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
	}
}
