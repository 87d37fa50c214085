package dotenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "# comment\nTEST_ENV_VALUE=staging\nQUOTED=\"with spaces\"\nEMPTY=\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	src, err := Open(path)
	require.NoError(t, err)

	v, ok := src.Lookup("TEST_ENV_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "staging", v)

	v, ok = src.Lookup("QUOTED")
	assert.True(t, ok)
	assert.Equal(t, "with spaces", v)

	v, ok = src.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = src.Lookup("ABSENT")
	assert.False(t, ok)
}

func TestOpen_DoesNotTouchProcessEnv(t *testing.T) {
	t.Setenv("ENVPAGE_DOTENV_ONLY", "")
	os.Unsetenv("ENVPAGE_DOTENV_ONLY")
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("ENVPAGE_DOTENV_ONLY=x\n"), 0o600))

	_, err := Open(path)
	require.NoError(t, err)

	_, set := os.LookupEnv("ENVPAGE_DOTENV_ONLY")
	assert.False(t, set)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	src, err := Parse(strings.NewReader("TEST_ENV_VALUE=X\n"))
	require.NoError(t, err)

	v, ok := src.Lookup("TEST_ENV_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "X", v)
}
