package config

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envServiceVersion = "SERVICE_VERSION"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"

	defaultPort           = "8590"
	defaultProvider       = "espn"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultServiceVersion = "dev"
	defaultMetricsPort    = "9290"
)

// ServiceName identifies this service in logs and telemetry.
const ServiceName = "scorepulse"
