package dotenv

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	gw "github.com/tbeaudouin05/envpage/api/services/env/gateway"
)

// Open parses the dotenv file at path into an immutable Source.
// Unlike godotenv.Load it never touches the process environment.
func Open(path string) (gw.Source, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return gw.Map(values), nil
}

// Parse reads dotenv-formatted content from r.
func Parse(r io.Reader) (gw.Source, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env content: %w", err)
	}
	return gw.Map(values), nil
}
