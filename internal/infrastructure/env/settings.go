package env

import (
	"time"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
)

const (
	KeyAPIToken        = "SERANKING_API_TOKEN"
	KeyBaseURL         = "SERANKING_BASE_URL"
	KeyHTTPSProxy      = "SERANKING_HTTPS_PROXY"
	KeyNoProxy         = "SERANKING_NO_PROXY"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogDir          = "LOG_DIR"
	KeyLogStderr       = "LOG_STDERR"
	KeyHTTPAddr        = "HTTP_ADDR"
	KeyShutdownSeconds = "HTTP_SHUTDOWN_SECONDS"
)

const (
	defaultLogLevel        = "info"
	defaultLogDir          = "log"
	defaultHTTPAddr        = ":8080"
	defaultShutdownSeconds = 10
)

// Settings is everything the adapter reads from its environment, resolved
// once at startup.
type Settings struct {
	APIToken   string
	BaseURL    string
	HTTPSProxy string
	NoProxy    string

	LogLevel  string
	LogDir    string
	LogStderr bool

	HTTPAddr        string
	ShutdownTimeout time.Duration
}

func LoadSettings(cfg output.ConfigPort) Settings {
	shutdown := cfg.GetInt(KeyShutdownSeconds, defaultShutdownSeconds)
	if shutdown <= 0 {
		shutdown = defaultShutdownSeconds
	}

	return Settings{
		APIToken:        cfg.Get(KeyAPIToken),
		BaseURL:         cfg.Get(KeyBaseURL),
		HTTPSProxy:      cfg.Get(KeyHTTPSProxy),
		NoProxy:         cfg.Get(KeyNoProxy),
		LogLevel:        cfg.GetWithDefault(KeyLogLevel, defaultLogLevel),
		LogDir:          cfg.GetWithDefault(KeyLogDir, defaultLogDir),
		LogStderr:       cfg.GetBool(KeyLogStderr, false),
		HTTPAddr:        cfg.GetWithDefault(KeyHTTPAddr, defaultHTTPAddr),
		ShutdownTimeout: time.Duration(shutdown) * time.Second,
	}
}
