package golden

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emmett/fonemas/internal/engine"
)

// Config configures a Runner.
type Config struct {
	// Options are passed to the engine on every transcription.
	Options engine.Options

	// Jobs is the maximum number of concurrent transcriptions.
	// Values below 2 run sequentially.
	Jobs int

	// Verbose enables a per-sentence PASS/FAIL/SKIP/ERROR line in test
	// mode.
	Verbose bool

	// Out receives progress and report text (default: os.Stdout).
	Out io.Writer

	// Logger receives diagnostics (default: no-op).
	Logger *zap.Logger
}

// Runner drives the golden-master workflow: capturing a baseline in
// generate mode and comparing fresh engine output against it in test
// mode. A per-sentence engine failure is recorded and never aborts the
// rest of the batch.
type Runner struct {
	transcriber engine.Transcriber
	opts        engine.Options
	jobs        int
	verbose     bool
	out         io.Writer
	outMu       sync.Mutex
	log         *zap.Logger
}

// NewRunner creates a Runner over the given transcriber.
func NewRunner(t engine.Transcriber, cfg Config) *Runner {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		transcriber: t,
		opts:        cfg.Options,
		jobs:        cfg.Jobs,
		verbose:     cfg.Verbose,
		out:         out,
		log:         log,
	}
}

// Failure is one per-entry failure record in a test run: either a
// comparison mismatch (Diff set) or a live engine error (Err set).
type Failure struct {
	Index    int    `json:"index"`
	Sentence string `json:"sentence"`
	Diff     *Diff  `json:"differences,omitempty"`
	Err      string `json:"error,omitempty"`
}

// Summary aggregates one test run. Total = Passed + Failed + Errors.
// The failure list is complete and in corpus order; only the rendered
// report truncates it.
type Summary struct {
	Total    int       `json:"total"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Errors   int       `json:"errors"`
	Failures []Failure `json:"failures,omitempty"`
}

// Generate transcribes every sentence and returns the resulting dataset
// in corpus order. Engine failures become error-variant entries.
func (r *Runner) Generate(ctx context.Context, sentences []string) Dataset {
	r.printf("Processing %d sentences...\n", len(sentences))

	entries := make(Dataset, len(sentences))
	var done atomic.Int64
	r.forEach(ctx, len(sentences), func(i int) {
		sentence := sentences[i]
		res, err := r.transcriber.Transcribe(ctx, sentence, r.opts)
		if err != nil {
			r.log.Warn("engine error during capture",
				zap.Int("index", i+1),
				zap.String("sentence", sentence),
				zap.Error(err))
			r.printf("ERROR processing sentence %d: %s\n  %v\n", i+1, sentence, err)
			entries[i] = Entry{Input: sentence, Err: err.Error()}
		} else {
			entries[i] = Entry{Input: sentence, Result: res}
		}
		if n := done.Add(1); n%50 == 0 {
			r.printf("  Processed %d/%d sentences...\n", n, len(sentences))
		}
	})

	r.printf("Completed processing %d sentences.\n", len(sentences))
	return entries
}

// GenerateFile captures a fresh baseline: it reads the corpus,
// transcribes every sentence, and writes the dataset to goldenPath,
// replacing any previous baseline wholesale.
func (r *Runner) GenerateFile(ctx context.Context, corpusPath, goldenPath string) (Dataset, error) {
	sentences, err := ReadCorpus(corpusPath)
	if err != nil {
		return nil, err
	}
	dataset := r.Generate(ctx, sentences)
	if err := Save(dataset, goldenPath); err != nil {
		return nil, err
	}
	r.printf("\nGolden dataset saved to: %s\nTotal entries: %d\n", goldenPath, len(dataset))
	return dataset, nil
}

type status int

const (
	statusPassed status = iota
	statusFailed
	statusSkipped
	statusErrored
)

type outcome struct {
	status status
	diff   *Diff
	errMsg string
}

// Test compares fresh engine output for every dataset entry against its
// golden record. Entries that captured a generation-time error are
// skipped and counted as errors: they mark known gaps, not regressions.
func (r *Runner) Test(ctx context.Context, dataset Dataset) Summary {
	r.printf("Running tests against %d golden dataset entries...\n\n", len(dataset))

	outcomes := make([]outcome, len(dataset))
	r.forEach(ctx, len(dataset), func(i int) {
		expected := dataset[i]
		if expected.IsError() {
			outcomes[i] = outcome{status: statusSkipped}
			return
		}
		actual, err := r.transcriber.Transcribe(ctx, expected.Input, r.opts)
		if err != nil {
			r.log.Warn("engine error during test",
				zap.Int("index", i+1),
				zap.String("sentence", expected.Input),
				zap.Error(err))
			outcomes[i] = outcome{status: statusErrored, errMsg: err.Error()}
			return
		}
		if d := Compare(expected.Result, actual); d != nil {
			outcomes[i] = outcome{status: statusFailed, diff: d}
		} else {
			outcomes[i] = outcome{status: statusPassed}
		}
	})

	// Aggregation is sequential over the ordered outcome slice, so the
	// failure list and verbose output follow corpus order even when the
	// transcriptions ran concurrently.
	summary := Summary{Total: len(dataset)}
	for i, oc := range outcomes {
		sentence := dataset[i].Input
		switch oc.status {
		case statusSkipped:
			summary.Errors++
			if r.verbose {
				r.printf("SKIP [%d]: %s (error in golden data)\n", i+1, sentence)
			}
		case statusErrored:
			summary.Errors++
			summary.Failures = append(summary.Failures, Failure{Index: i + 1, Sentence: sentence, Err: oc.errMsg})
			if r.verbose {
				r.printf("ERROR [%d]: %s\n  %s\n", i+1, sentence, oc.errMsg)
			}
		case statusFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Index: i + 1, Sentence: sentence, Diff: oc.diff})
			if r.verbose {
				r.printf("FAIL [%d]: %s\n", i+1, sentence)
				writeDiff(r.out, oc.diff, "  ")
			}
		default:
			summary.Passed++
			if r.verbose {
				r.printf("PASS [%d]: %s\n", i+1, sentence)
			}
		}
	}
	return summary
}

// TestFile loads the golden dataset and runs Test against it. A missing
// or corrupt dataset is fatal and returned as an error.
func (r *Runner) TestFile(ctx context.Context, goldenPath string) (Summary, error) {
	dataset, err := Load(goldenPath)
	if err != nil {
		return Summary{}, err
	}
	return r.Test(ctx, dataset), nil
}

// forEach runs fn for every index, sequentially by default or through a
// bounded worker pool when Jobs > 1. Workers only ever write their own
// slice slot, so results stay in corpus order regardless of completion
// order.
func (r *Runner) forEach(ctx context.Context, n int, fn func(int)) {
	if r.jobs <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(r.jobs)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// Workers never return errors; failures are data, not control flow.
	_ = g.Wait()
}

func (r *Runner) printf(format string, args ...any) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}
