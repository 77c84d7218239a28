package di

import (
	"fmt"
	"io"
	"time"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/input"
	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/application/service"
	"github.com/Eugene-WebDev/se-ranking-node/internal/infrastructure/httpapi"
	"github.com/Eugene-WebDev/se-ranking-node/internal/infrastructure/logger"
	"github.com/Eugene-WebDev/se-ranking-node/internal/infrastructure/progress"
	"github.com/Eugene-WebDev/se-ranking-node/internal/infrastructure/seranking"
	"github.com/Eugene-WebDev/se-ranking-node/internal/usecase/executor"
)

type Container struct {
	Logger     output.LoggerPort
	Client     output.SerpClientPort
	Operations output.OperationRegistry
	Executor   input.BatchExecutor
	HTTP       *httpapi.Server
}

type Config struct {
	APIToken   string
	BaseURL    string
	HTTPSProxy string
	NoProxy    string

	LogLevel  string
	LogDir    string
	LogStderr bool
	RunName   string

	// Progress receives human readable run progress. Nil disables it.
	Progress io.Writer
	// Clock stamps output records. Nil means time.Now in UTC.
	Clock func() time.Time
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(logger.Config{
		Level:   cfg.LogLevel,
		Dir:     cfg.LogDir,
		RunName: cfg.RunName,
		Stderr:  cfg.LogStderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	clientCfg := seranking.DefaultConfig()
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPSProxy = cfg.HTTPSProxy
	clientCfg.NoProxy = cfg.NoProxy
	clientCfg.Logger = log.WithField("component", "seranking")
	client := seranking.NewClient(clientCfg)

	operations := service.NewOperationRegistry()
	registerOperations(operations, client, service.NewNormalizer(cfg.Clock), log)

	var reporter output.ProgressPort = progress.Nop{}
	if cfg.Progress != nil {
		reporter = progress.NewConsole(cfg.Progress)
	}

	uc := executor.New(operations, log, reporter)

	return &Container{
		Logger:     log,
		Client:     client,
		Operations: operations,
		Executor:   uc,
		HTTP: httpapi.NewServer(uc, httpapi.Config{
			DefaultToken: cfg.APIToken,
			Logger:       log.WithField("component", "http"),
		}),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerOperations(registry *service.OperationRegistryImpl, client output.SerpClientPort, normalizer *service.Normalizer, log output.LoggerPort) {
	resolver := service.NewResolver()
	registry.Register(service.NewCreateSerpTaskHandler(client, resolver, normalizer, log))
	registry.Register(service.NewGetTaskStatusHandler(client, resolver, normalizer, log))
}
