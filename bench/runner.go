package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"github.com/seipan/treebench"
)

// ErrVerification is returned when an engine loses, invents or fails to
// delete a key.
var ErrVerification = merry.New("verification failed")

// Phase names one timed step of an iteration.
type Phase string

const (
	PhaseInsert Phase = "insert"
	PhaseFind   Phase = "find"
	PhaseDelete Phase = "delete"
	PhaseVerify Phase = "verify"
)

// Phases lists the phases in the order they run.
var Phases = []Phase{PhaseInsert, PhaseFind, PhaseDelete, PhaseVerify}

type insertDepther interface {
	InsertDepths() []int
}

// Result holds the measurements of one engine across all iterations.
type Result struct {
	Engine  string
	Timings map[Phase]*Timing
	// MaxDepth is the height, in edges, after the insert phase of the last
	// iteration, or -1 if the engine does not report it.
	MaxDepth int
	// MeanInsertDepth averages the depth reported by each insertion, root
	// counted as 1, or 0 if the engine does not report it.
	MeanInsertDepth float64
	// HeapBytes approximates the heap growth caused by the insert phase of
	// the last iteration.
	HeapBytes uint64
	// Deleted reports whether DeleteKey was present in the engine.
	Deleted bool
}

func newResult(engine string) *Result {
	res := &Result{Engine: engine, Timings: make(map[Phase]*Timing, len(Phases)), MaxDepth: -1}
	for _, p := range Phases {
		res.Timings[p] = &Timing{}
	}
	return res
}

// Report gathers the results of a run, one per engine in configuration
// order.
type Report struct {
	Config  Config
	Results []*Result
}

// Runner measures the configured engines against a single dataset.
type Runner struct {
	cfg     *Config
	logger  log.FieldLogger
	dataset []int
}

// NewRunner validates cfg and generates the dataset.
func NewRunner(cfg *Config, logger log.FieldLogger) (*Runner, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:     cfg,
		logger:  logger,
		dataset: UniqueDataset(cfg.Keys, cfg.Seed),
	}, nil
}

// Dataset returns the keys in insertion order.
func (r *Runner) Dataset() []int { return r.dataset }

// Run measures every engine. Cancellation is honoured between iterations,
// never inside one.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{Config: *r.cfg}
	for _, name := range r.cfg.Engines {
		res := newResult(name)
		for i := 0; i < r.cfg.Iterations; i++ {
			if err := ctx.Err(); err != nil {
				return nil, merry.Wrap(err)
			}
			if err := r.iterate(name, i, res); err != nil {
				r.logger.WithFields(log.Fields{"engine": name, "iteration": i}).
					WithError(err).Error("iteration failed")
				return nil, err
			}
		}
		r.logger.WithFields(log.Fields{
			"engine":    name,
			"insert":    res.Timings[PhaseInsert].Mean(),
			"find":      res.Timings[PhaseFind].Mean(),
			"max_depth": res.MaxDepth,
		}).Info("engine measured")
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (r *Runner) iterate(name string, iteration int, res *Result) error {
	e, err := NewEngine(name, r.cfg, r.logger)
	if err != nil {
		return err
	}
	defer e.Close()

	logger := r.logger.WithFields(log.Fields{"engine": name, "iteration": iteration})
	n := len(r.dataset)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	elapsed := timed(func() {
		for _, k := range r.dataset {
			if err = e.Insert(k); err != nil {
				return
			}
		}
	})
	if err != nil {
		return merry.WithValue(err, "engine", name)
	}
	runtime.ReadMemStats(&after)
	res.Timings[PhaseInsert].Add(elapsed)
	res.HeapBytes = 0
	if after.HeapAlloc > before.HeapAlloc {
		res.HeapBytes = after.HeapAlloc - before.HeapAlloc
	}
	logger.WithFields(log.Fields{"phase": PhaseInsert, "duration": elapsed}).Debug("phase done")
	if got := e.Len(); got != n {
		return verificationError(name, "engine holds %d keys after inserting %d", got, n)
	}

	if d, ok := e.(treebench.Depther); ok {
		res.MaxDepth = d.MaxDepth()
	}
	if d, ok := e.(insertDepther); ok {
		res.MeanInsertDepth = mean(d.InsertDepths())
	}

	missing := 0
	elapsed = timed(func() {
		for k := 0; k < n; k++ {
			if !e.Find(k) {
				missing++
			}
		}
	})
	res.Timings[PhaseFind].Add(elapsed)
	logger.WithFields(log.Fields{"phase": PhaseFind, "duration": elapsed}).Debug("phase done")
	if missing > 0 {
		return verificationError(name, "%d of %d keys not found", missing, n)
	}

	var deleted bool
	elapsed = timed(func() { deleted = e.Delete(r.cfg.DeleteKey) })
	res.Timings[PhaseDelete].Add(elapsed)
	res.Deleted = deleted
	logger.WithFields(log.Fields{"phase": PhaseDelete, "duration": elapsed, "deleted": deleted}).Debug("phase done")
	if present := r.cfg.DeleteKey >= 0 && r.cfg.DeleteKey < n; deleted != present {
		return verificationError(name, "delete of key %d returned %t", r.cfg.DeleteKey, deleted)
	}

	wrong := 0
	elapsed = timed(func() {
		for k := 0; k < n; k++ {
			if e.Find(k) == (deleted && k == r.cfg.DeleteKey) {
				wrong++
			}
		}
	})
	res.Timings[PhaseVerify].Add(elapsed)
	logger.WithFields(log.Fields{"phase": PhaseVerify, "duration": elapsed}).Debug("phase done")
	if wrong > 0 {
		return verificationError(name, "%d keys in the wrong state after delete", wrong)
	}
	want := n
	if deleted {
		want--
	}
	if got := e.Len(); got != want {
		return verificationError(name, "engine holds %d keys, want %d", got, want)
	}
	return nil
}

func timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

func verificationError(engine, format string, args ...interface{}) error {
	return merry.Here(ErrVerification).Appendf(format, args...).WithValue("engine", engine)
}
