package workload

import (
	"context"
	"math/rand/v2"
	"os"
	"time"

	"github.com/eric2788/ordset/internal/modules/config"
	"github.com/eric2788/ordset/pkg/ds"
	"github.com/eric2788/ordset/utils"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var logger = logrus.WithField("service", "workload")

type Service struct {
	cfg     *config.Config
	proc    *process.Process
	results *xsync.Map[string, *Stats]
}

func NewService(cfg *config.Config) (*Service, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, errors.Wrap(err, "inspect own process")
	}
	return &Service{
		cfg:     cfg,
		proc:    proc,
		results: xsync.NewMap[string, *Stats](),
	}, nil
}

// Run drives every configured strategy in turn and returns their stats in the
// same order.
func (s *Service) Run(ctx context.Context) ([]*Stats, error) {
	all := make([]*Stats, 0, len(s.cfg.Strategies))
	for _, strategy := range s.cfg.Strategies {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		stats, err := s.RunStrategy(ctx, strategy)
		if err != nil {
			return all, err
		}
		all = append(all, stats)
	}
	return all, nil
}

// RunStrategy seeds a synced set of the given strategy with the whole key
// space and hammers it with the configured operation mix until the configured
// duration elapses or ctx is done.
func (s *Service) RunStrategy(ctx context.Context, strategy ds.Strategy) (*Stats, error) {
	l := logger.WithField("strategy", strategy.String())

	set := ds.NewSyncedSet(
		ds.WithStrategy[int](strategy),
		ds.WithCapacity[int](s.cfg.Elements),
		ds.WithLogger[int](l),
	)
	defer set.Close()

	for key := range s.cfg.Elements {
		set.Add(key)
	}

	c := newCounters()
	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Duration)
	defer cancel()

	l.Infof("running %d workers for %v over %d elements", s.cfg.Workers, s.cfg.Duration, s.cfg.Elements)
	start := time.Now()
	g, gctx := errgroup.WithContext(runCtx)
	for id := range s.cfg.Workers {
		g.Go(func() error {
			return s.work(gctx, set, id, c)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "%s workload", strategy)
	}
	elapsed := time.Since(start)

	stats := c.stats(strategy, elapsed)
	stats.FinalSize = set.Size()
	if mem, err := s.proc.MemoryInfoWithContext(ctx); err != nil {
		l.Warnf("cannot read process memory: %v", err)
	} else {
		stats.RSSBytes = mem.RSS
	}

	s.results.Store(stats.Strategy, stats)
	l.Infof("workload finished: %s", utils.PrettyPrintJSON(stats))
	return stats, nil
}

// Results returns the latest stats of every strategy run so far.
func (s *Service) Results() map[string]*Stats {
	results := make(map[string]*Stats)
	s.results.Range(func(key string, value *Stats) bool {
		results[key] = value
		return true
	})
	return results
}

func (s *Service) work(ctx context.Context, set *ds.SyncedSet[int], id int, c *counters) error {
	limit := utils.Ternary(s.cfg.OpsPerSecond > 0, rate.Limit(s.cfg.OpsPerSecond), rate.Inf)
	limiter := rate.NewLimiter(limit, 1)
	rng := rand.New(rand.NewPCG(uint64(id), uint64(time.Now().UnixNano())))

	for ctx.Err() == nil {
		if err := limiter.Wait(ctx); err != nil {
			// deadline reached while waiting for a token
			return nil
		}

		key := rng.IntN(s.cfg.Elements)
		roll := rng.IntN(100)
		switch {
		case roll < s.cfg.RemoveRatio:
			// remove-then-add moves key to the tail, the removal-heavy case
			if err := set.Mutate(func(inner ds.Set[int]) error {
				if inner.Remove(key) {
					inner.Add(key)
				}
				return nil
			}); err != nil {
				return err
			}
			c.moves.Inc()
		case roll < s.cfg.RemoveRatio+s.cfg.IndexRatio:
			size := set.Size()
			if size == 0 {
				continue
			}
			// size may shrink between the two calls
			if _, err := set.At(rng.IntN(size)); err != nil && !errors.Is(err, ds.ErrOutOfRange) {
				return err
			}
			c.lookups.Inc()
		case roll%2 == 0:
			set.Contains(key)
			c.contains.Inc()
		default:
			set.AddOrRemove(key, rng.IntN(2) == 0)
			c.toggles.Inc()
		}
	}
	return nil
}
