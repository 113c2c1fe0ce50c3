package workload_test

import (
	"context"
	"testing"
	"time"

	"github.com/eric2788/ordset/internal/modules/config"
	"github.com/eric2788/ordset/internal/services/workload"
	"github.com/eric2788/ordset/pkg/ds"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

func newConfig() *config.Config {
	return &config.Config{
		Strategies:  []ds.Strategy{ds.ArrayBacked, ds.Linked},
		Elements:    256,
		Workers:     4,
		Duration:    150 * time.Millisecond,
		RemoveRatio: 25,
		IndexRatio:  25,
	}
}

func TestRun_AllStrategies(t *testing.T) {
	svc, err := workload.NewService(newConfig())
	require.NoError(t, err)

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	for _, st := range stats {
		t.Logf("📊 %s: %d ops (%.0f ops/s), final size %d, rss %d bytes",
			st.Strategy, st.Operations, st.OpsPerSecond, st.FinalSize, st.RSSBytes)
		assert.Positive(t, st.Operations, st.Strategy)
		assert.Equal(t, st.Moves+st.Lookups+st.Contains+st.Toggles, st.Operations)
		assert.GreaterOrEqual(t, st.FinalSize, 0)
		assert.LessOrEqual(t, st.FinalSize, 256)
	}

	results := svc.Results()
	assert.Contains(t, results, "array")
	assert.Contains(t, results, "linked")
}

func TestRunStrategy_SizePreservingMix(t *testing.T) {
	cfg := newConfig()
	cfg.RemoveRatio = 60
	cfg.IndexRatio = 40
	svc, err := workload.NewService(cfg)
	require.NoError(t, err)

	for _, strategy := range cfg.Strategies {
		st, err := svc.RunStrategy(context.Background(), strategy)
		require.NoError(t, err)
		// moves and lookups never change membership
		assert.Equal(t, cfg.Elements, st.FinalSize, strategy.String())
		assert.Zero(t, st.Contains+st.Toggles)
	}
}

func TestRunStrategy_RateLimited(t *testing.T) {
	cfg := newConfig()
	cfg.Workers = 1
	cfg.OpsPerSecond = 50
	cfg.Duration = 200 * time.Millisecond
	svc, err := workload.NewService(cfg)
	require.NoError(t, err)

	st, err := svc.RunStrategy(context.Background(), ds.Linked)
	require.NoError(t, err)
	assert.LessOrEqual(t, st.Operations, int64(20))
}

func TestRun_Cancelled(t *testing.T) {
	svc, err := workload.NewService(newConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats, err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stats)
}
