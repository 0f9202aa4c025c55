package profiling

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Lightweight per-frame CPU section timers.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("pbr.draw")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(frameTotals)
}

type section struct {
	name string
	dur  time.Duration
}

func top(n int) []section {
	ss := Snapshot()
	list := make([]section, 0, len(ss))
	for k, v := range ss {
		list = append(list, section{name: k, dur: v})
	}
	slices.SortFunc(list, func(a, b section) int {
		if c := cmp.Compare(b.dur, a.dur); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return list[:min(n, len(list))]
}

// TopN formats the n slowest sections of the current frame.
// Example: "renderer.Render:4.2ms, pbr.draw:2.1ms"
func TopN(n int) string {
	parts := make([]string, 0, n)
	for _, s := range top(n) {
		parts = append(parts, s.name+":"+formatMs(s.dur))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0), ".0") + "ms"
}

// ReportSlowFrame logs the frame's top sections when it exceeded budget.
// It returns whether the frame was slow.
func ReportSlowFrame(log zerolog.Logger, frame int, elapsed, budget time.Duration) bool {
	if budget <= 0 || elapsed <= budget {
		return false
	}
	log.Warn().
		Int("frame", frame).
		Dur("elapsed", elapsed).
		Dur("budget", budget).
		Str("top", TopN(3)).
		Msg("slow frame")
	return true
}
