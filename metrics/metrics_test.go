package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAreRecorded(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodGet, "/api/history", 200, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/history", 200, 20*time.Millisecond)
	m.ObserveParse("fallback")
	m.ObserveHistorySave(errors.New("disk full"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/history", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseResults.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.historySaves.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Second)
		m.ObserveLLM(time.Second, nil)
		m.ObserveParse("strict")
		m.ObserveHistorySave(nil)
	})
}

func TestHandlerExposesNamespace(t *testing.T) {
	m := New()
	m.ObserveLLM(time.Second, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "summarizer_llm_request_duration_seconds")
}
