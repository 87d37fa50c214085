package bootstrap

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tbeaudouin05/envpage/api/config"
	envapp "github.com/tbeaudouin05/envpage/api/services/env/app"
	gw "github.com/tbeaudouin05/envpage/api/services/env/gateway"
	"github.com/tbeaudouin05/envpage/api/services/env/gateway/dotenv"
	"github.com/tbeaudouin05/envpage/api/services/env/gateway/osenv"
	pageapp "github.com/tbeaudouin05/envpage/api/services/page/app"
	grpcserver "github.com/tbeaudouin05/envpage/api/services/page/grpc"
)

var (
	appConfig  *config.Config
	envService envapp.Service
	pageServer *grpcserver.Server
	initOnce   sync.Once
	initErr    error
)

// Init loads config, assembles the configuration sources and wires services.
func Init() error {
	// If a server has already been injected (e.g., tests), do not override it.
	if pageServer != nil {
		return nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return Wire(cfg)
}

// Wire builds the services from an explicit configuration.
func Wire(cfg *config.Config) error {
	src, err := Sources(cfg)
	if err != nil {
		return err
	}
	appConfig = cfg
	envService = envapp.NewService(src)
	pageServer = grpcserver.New(envService, pageapp.WithTitle(cfg.PageTitle))
	slog.Info("services wired", "dotenv", cfg.DotenvPath, "env_file", cfg.EnvFile)
	return nil
}

// Sources returns the process environment followed by ENV_FILE, if set.
func Sources(cfg *config.Config) (gw.Source, error) {
	chain := gw.Chain{osenv.New()}
	if cfg.EnvFile != "" {
		fileSrc, err := dotenv.Open(cfg.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open env file: %w", err)
		}
		chain = append(chain, fileSrc)
	}
	return chain, nil
}

func GetConfig() *config.Config { return appConfig }

func GetEnvService() envapp.Service { return envService }

func GetPageServer() *grpcserver.Server { return pageServer }

// SetPageServer allows tests to inject a server built on a stub source.
func SetPageServer(s *grpcserver.Server) { pageServer = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
