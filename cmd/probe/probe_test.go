package probe_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assettoken/asset-token/cmd/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, readyStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/-/healthy", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "Healthy.")
	})
	mux.HandleFunc("/-/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(readyStatus)
		if readyStatus == http.StatusOK {
			_, _ = io.WriteString(w, "Ready.")
			return
		}
		_, _ = io.WriteString(w, "Not ready.")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := probe.New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestProbeLiveness(t *testing.T) {
	srv := newGateway(t, http.StatusOK)
	t.Setenv("SERVER_MANAGEMENT_PROBE_BASE_URL", srv.URL)

	out, err := execute(t, "liveness", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "/-/healthy: 200 Healthy.")
}

func TestProbeReadiness(t *testing.T) {
	srv := newGateway(t, http.StatusOK)
	t.Setenv("SERVER_MANAGEMENT_PROBE_BASE_URL", srv.URL)

	_, err := execute(t, "readiness")
	require.NoError(t, err)
}

func TestProbeReadinessNotReady(t *testing.T) {
	srv := newGateway(t, 521)
	t.Setenv("SERVER_MANAGEMENT_PROBE_BASE_URL", srv.URL)

	_, err := execute(t, "readiness")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "521")
}

func TestProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	t.Setenv("SERVER_MANAGEMENT_PROBE_BASE_URL", srv.URL)

	_, err := execute(t, "liveness")
	require.Error(t, err)
}
