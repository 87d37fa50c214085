package config

const (
	// EnvTestValue is the variable exposed to the page as TEST_ENV_VALUE.
	EnvTestValue = "TEST_ENV_VALUE"

	// GlobalObject is the browser global the injection script assigns.
	GlobalObject = "__ENV__"
)

// Server settings
const (
	EnvHTTPPort  = "PORT"
	EnvGRPCPort  = "GRPC_PORT"
	EnvEnvFile   = "ENV_FILE"
	EnvPageTitle = "PAGE_TITLE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

const (
	DefaultHTTPPort  = "8080"
	DefaultGRPCPort  = "50051"
	DefaultPageTitle = "Vite + React"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
