package app

import (
	"fmt"
	"log/slog"

	"github.com/tbeaudouin05/envpage/api/config"
	"github.com/tbeaudouin05/envpage/api/metrics"
	gw "github.com/tbeaudouin05/envpage/api/services/env/gateway"
)

// Service exposes the page configuration.
type Service interface {
	Env() (Env, error)
}

type serviceImpl struct{ src gw.Source }

// NewService returns a Service reading from src.
func NewService(src gw.Source) Service { return serviceImpl{src: src} }

// Env resolves the configuration from the service's source.
func (s serviceImpl) Env() (Env, error) { return Resolve(s.src) }

// Resolve reads TEST_ENV_VALUE from src.
// An empty value is valid; only an absent key is an error.
func Resolve(src gw.Source) (Env, error) {
	if src == nil {
		metrics.ConfigResolveTotal.WithLabelValues(metrics.ResultMissing).Inc()
		return Env{}, fmt.Errorf("%w: no configuration source", ErrMissingConfig)
	}
	v, ok := src.Lookup(config.EnvTestValue)
	if !ok {
		metrics.ConfigResolveTotal.WithLabelValues(metrics.ResultMissing).Inc()
		slog.Debug("configuration variable not set", "key", config.EnvTestValue)
		return Env{}, fmt.Errorf("%w: %s is not set", ErrMissingConfig, config.EnvTestValue)
	}
	metrics.ConfigResolveTotal.WithLabelValues(metrics.ResultOK).Inc()
	return Env{TestEnvValue: v}, nil
}
