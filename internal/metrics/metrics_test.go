package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordWrite(t *testing.T) {
	before := testutil.ToFloat64(recordsWritten.WithLabelValues("policy", "create"))
	RecordWrite("policy", "create")
	assert.Equal(t, before+1, testutil.ToFloat64(recordsWritten.WithLabelValues("policy", "create")))
}

func TestRecordRejectionAndHistory(t *testing.T) {
	beforeRej := testutil.ToFloat64(rejections.WithLabelValues("holder", "no_changes"))
	beforeHist := testutil.ToFloat64(holderHistoryAppended)

	RecordRejection("holder", "no_changes")
	RecordHolderHistory()

	assert.Equal(t, beforeRej+1, testutil.ToFloat64(rejections.WithLabelValues("holder", "no_changes")))
	assert.Equal(t, beforeHist+1, testutil.ToFloat64(holderHistoryAppended))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/v1/products", "GET", "200"))
	ObserveHTTP("/api/v1/products", "GET", 200, time.Now())
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("/api/v1/products", "GET", "200")))
}
