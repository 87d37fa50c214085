package osenv

import (
	"os"

	gw "github.com/tbeaudouin05/envpage/api/services/env/gateway"
)

// source reads the process environment.
type source struct{}

// New returns a Source backed by the process environment.
func New() gw.Source { return source{} }

func (source) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
