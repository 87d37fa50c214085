package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	envapp "github.com/tbeaudouin05/envpage/api/services/env/app"
	gw "github.com/tbeaudouin05/envpage/api/services/env/gateway"
	grpcserver "github.com/tbeaudouin05/envpage/api/services/page/grpc"
)

func serve(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	b, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(b)
}

func TestNew_ServesPage(t *testing.T) {
	h := New(grpcserver.New(envapp.NewService(gw.Map{"TEST_ENV_VALUE": "staging"})))

	code, body := serve(t, h, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `<p class="read-the-docs">staging</p>`)
}

func TestNew_Metrics(t *testing.T) {
	h := New(grpcserver.New(envapp.NewService(gw.Map{"TEST_ENV_VALUE": "staging"})))
	serve(t, h, "/")

	code, body := serve(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "envpage_render_total")
	assert.Contains(t, body, "envpage_config_resolve_total")
}

func TestNew_WithoutServer(t *testing.T) {
	h := New(nil)

	code, _ := serve(t, h, "/")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = serve(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, code)
}
