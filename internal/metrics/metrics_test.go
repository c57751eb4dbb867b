package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New()

	r.ObserveLoad(nil, 12)
	r.ObserveLoad(errors.New("bad"), 99)
	r.ObserveExport(nil, 4, 2048, 2*time.Second)
	r.ObserveExport(errors.New("chrome"), 0, 0, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.loads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.loads.WithLabelValues("error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(r.scoreRecords))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.exports.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.exports.WithLabelValues("error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.exportFiles))
	assert.Equal(t, 2048.0, testutil.ToFloat64(r.lastExportSize))
}

func TestRecorderWriteTextfile(t *testing.T) {
	r := New()
	r.ObserveLoad(nil, 3)

	path := filepath.Join(t.TempDir(), "kompetencia.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kompetencia_score_records_total 3")
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveLoad(nil, 1)
		r.ObserveExport(nil, 1, 1, time.Second)
		assert.NoError(t, r.WriteTextfile("unused"))
		assert.Nil(t, r.Registry())
	})
}
