package app

import "github.com/tbeaudouin05/envpage/api/config"

// Env is the configuration exposed to the page.
// The JSON shape matches the browser global: {"TEST_ENV_VALUE": "..."}.
type Env struct {
	TestEnvValue string `json:"TEST_ENV_VALUE"`
}

// AsMap returns the env keyed by its exposed variable names.
func (e Env) AsMap() map[string]any {
	return map[string]any{config.EnvTestValue: e.TestEnvValue}
}
