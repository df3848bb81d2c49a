package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	// counters cannot be reset, so compare against the value before the call
	before := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("editorial.article.test", ResultSuccess))

	ObserveOperation("editorial.article.test", ResultSuccess, 20*time.Millisecond)

	after := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("editorial.article.test", ResultSuccess))
	assert.Equal(t, before+1, after)

	count := testutil.CollectAndCount(GatewayRequestDuration)
	assert.GreaterOrEqual(t, count, 1)
}
