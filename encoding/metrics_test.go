package encoding

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMetrics_Singleton(t *testing.T) {
	m1 := GetMetrics()
	m2 := GetMetrics()

	require.NotNil(t, m1)
	require.NotNil(t, m2)
	assert.Same(t, m1, m2)
}

func TestGetMetrics_FieldsInitialized(t *testing.T) {
	m := GetMetrics()

	require.NotNil(t, m)
	assert.NotNil(t, m.negotiationsTotal)
	assert.NotNil(t, m.encodeTotal)
	assert.NotNil(t, m.decodeTotal)
	assert.NotNil(t, m.errorsTotal)
}

func TestMetrics_Record(t *testing.T) {
	m := GetMetrics()

	assert.NotPanics(t, func() {
		m.RecordNegotiation("json")
		m.RecordEncode("json", "success")
		m.RecordEncode("xml", "error")
		m.RecordDecode("protobuf", "success")
		m.RecordError("json", "decode")
	})
}

func TestMetrics_RecordNegotiation_SingleLabel(t *testing.T) {
	m := GetMetrics()

	counter := m.negotiationsTotal.WithLabelValues("xml")
	before := testutil.ToFloat64(counter)

	m.RecordNegotiation("xml")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetrics_RecordError_Increments(t *testing.T) {
	m := GetMetrics()

	counter := m.errorsTotal.WithLabelValues("xml", "encode")
	before := testutil.ToFloat64(counter)

	m.RecordError("xml", "encode")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
