package config

// OtlpConfig points the optional OTLP push exporter at a collector.
type OtlpConfig struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// MetricsConfig controls the telemetry surface: the Prometheus scrape port
// and the optional OTLP push pipeline.
type MetricsConfig struct {
	Enabled bool
	Port    string
	Otlp    OtlpConfig
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled: boolEnvOrDefault(envMetricsOn, true),
		Port:    envOrDefault(envMetricsPort, defaultMetricsPort),
		Otlp: OtlpConfig{
			Endpoint:    envOrDefault(envOtelEndpoint, ""),
			ServiceName: envOrDefault(envOtelService, ServiceName),
			Insecure:    boolEnvOrDefault(envOtelInsecure, true),
		},
	}
}
