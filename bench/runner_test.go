package bench

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seipan/treebench"
)

func smallConfig() *Config {
	cfg := DefaultConfig()
	cfg.Keys = 200
	cfg.Iterations = 3
	cfg.Validate = true
	return cfg
}

func TestRun(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	cfg := smallConfig()

	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)
	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Results, len(cfg.Engines))
	for i, res := range report.Results {
		assert.Equal(t, cfg.Engines[i], res.Engine)
		assert.True(t, res.Deleted)
		for _, p := range Phases {
			assert.Equal(t, cfg.Iterations, res.Timings[p].Len(), "%s %s", res.Engine, p)
		}
	}

	bst := report.Results[0]
	require.Equal(t, "bstree", bst.Engine)
	assert.GreaterOrEqual(t, bst.MaxDepth, 7)
	assert.Less(t, bst.MaxDepth, cfg.Keys)
	assert.Greater(t, bst.MeanInsertDepth, 1.0)
	assert.Greater(t, bst.HeapBytes, uint64(0))
	assert.Equal(t, -1, report.Results[1].MaxDepth)

	measured := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == "engine measured" {
			measured++
		}
	}
	assert.Equal(t, len(cfg.Engines), measured)
}

func TestRunDeleteKeyOutsideDataset(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := smallConfig()
	cfg.DeleteKey = cfg.Keys + 10

	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	for _, res := range report.Results {
		assert.False(t, res.Deleted, res.Engine)
	}
}

func TestRunCancelled(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	r, err := NewRunner(smallConfig(), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	assert.True(t, merry.Is(err, context.Canceled), "%v", err)
}

// lossyEngine forgets every key it is asked to delete, and one more.
type lossyEngine struct {
	MapEngine
}

func (e *lossyEngine) Name() string { return "lossy" }

func (e *lossyEngine) Delete(key int) bool {
	delete(e.mp, key+1)
	return e.MapEngine.Delete(key)
}

func TestRunDetectsLostKeys(t *testing.T) {
	Register("lossy", func(cfg *Config, _ log.FieldLogger) (treebench.Engine, error) {
		return &lossyEngine{MapEngine{mp: make(map[int]int)}}, nil
	})
	defer delete(globalEngineRegistry, "lossy")

	logger, hook := logtest.NewNullLogger()
	cfg := smallConfig()
	cfg.Engines = []string{"lossy"}

	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrVerification), "%v", err)
	assert.Equal(t, "lossy", merry.Value(err, "engine"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.ErrorLevel, entry.Level)
}

func TestNewRunnerRejectsConfig(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := DefaultConfig()
	cfg.Keys = -1
	_, err := NewRunner(cfg, logger)
	assert.True(t, merry.Is(err, ErrInvalidConfig))
}

func TestReportWrite(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := smallConfig()
	cfg.Engines = []string{"bstree", "map"}

	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)
	report, err := r.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "KEYS: 200  TRIES TOT: 3"), out)
	assert.Contains(t, out, "\nbstree:\nMAX DEPTH: ")
	assert.Contains(t, out, "\nmap:\nHEAP: ")
	assert.Equal(t, 2, strings.Count(out, "PHASE"))
	for _, p := range Phases {
		assert.Contains(t, out, string(p))
	}
}

func TestDumpTree(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := smallConfig()
	cfg.Keys = 3
	cfg.Seed = 1

	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.DumpTree(&buf))
	lines := strings.Split(buf.String(), "\n")
	root := r.Dataset()[0]
	assert.True(t, strings.HasPrefix(lines[0], fmt.Sprintf("%d (p:- ", root)), lines[0])
	assert.Contains(t, buf.String(), "MAX DEPTH: ")
	assert.Contains(t, buf.String(), "FINGERPRINT: ")
}
