package workload

import (
	"time"

	"github.com/eric2788/ordset/pkg/ds"
	"github.com/puzpuzpuz/xsync/v4"
)

type Stats struct {
	Strategy      string  `json:"strategy"`
	Operations    int64   `json:"operations"`
	Moves         int64   `json:"moves"`
	Lookups       int64   `json:"lookups"`
	Contains      int64   `json:"contains"`
	Toggles       int64   `json:"toggles"`
	OpsPerSecond  float64 `json:"ops_per_second"`
	ElapsedMillis int64   `json:"elapsed_millis"`
	FinalSize     int     `json:"final_size"`
	RSSBytes      uint64  `json:"rss_bytes"`
}

type counters struct {
	moves    *xsync.Counter
	lookups  *xsync.Counter
	contains *xsync.Counter
	toggles  *xsync.Counter
}

func newCounters() *counters {
	return &counters{
		moves:    xsync.NewCounter(),
		lookups:  xsync.NewCounter(),
		contains: xsync.NewCounter(),
		toggles:  xsync.NewCounter(),
	}
}

func (c *counters) stats(strategy ds.Strategy, elapsed time.Duration) *Stats {
	st := &Stats{
		Strategy:      strategy.String(),
		Moves:         c.moves.Value(),
		Lookups:       c.lookups.Value(),
		Contains:      c.contains.Value(),
		Toggles:       c.toggles.Value(),
		ElapsedMillis: elapsed.Milliseconds(),
	}
	st.Operations = st.Moves + st.Lookups + st.Contains + st.Toggles
	if secs := elapsed.Seconds(); secs > 0 {
		st.OpsPerSecond = float64(st.Operations) / secs
	}
	return st
}
