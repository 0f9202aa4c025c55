package profiling

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	stop := Track("a")
	time.Sleep(time.Millisecond)
	stop()
	Track("a")()

	ss := Snapshot()
	assert.GreaterOrEqual(t, ss["a"], time.Millisecond)
	assert.Len(t, ss, 1)

	ResetFrame()
	assert.Empty(t, Snapshot())
}

func TestTopNOrdersBySlowest(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	record("fast", 500*time.Microsecond)
	record("slow", 4200*time.Microsecond)
	record("mid", 2*time.Millisecond)

	assert.Equal(t, "slow:4.2ms, mid:2ms", TopN(2))
	assert.Equal(t, "slow:4.2ms, mid:2ms, fast:0.5ms", TopN(10))
}

func TestReportSlowFrame(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)
	record("renderer.Render", 30*time.Millisecond)

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	assert.False(t, ReportSlowFrame(log, 1, 10*time.Millisecond, 33*time.Millisecond))
	assert.Empty(t, buf.String())

	assert.True(t, ReportSlowFrame(log, 2, 40*time.Millisecond, 33*time.Millisecond))
	assert.Contains(t, buf.String(), "slow frame")
	assert.Contains(t, buf.String(), "renderer.Render:30ms")
}
