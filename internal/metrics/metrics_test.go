package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordChange(t *testing.T) {
	before := testutil.ToFloat64(recordsChanged.WithLabelValues("order", "create"))
	RecordChange("order", "create")
	RecordChange("order", "create")
	assert.Equal(t, before+2, testutil.ToFloat64(recordsChanged.WithLabelValues("order", "create")))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/clients", "200"))
	ObserveHTTP("GET", "/clients", http.StatusOK, 12*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/clients", "200")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordChange("client", "update")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `ychet_records_changed_total{action="update",entity="client"}`), body)
}
