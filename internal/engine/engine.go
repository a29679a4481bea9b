package engine

import (
	"context"
	"fmt"
)

// Section holds one linguistic layer of a transcription. Words and
// Syllables are independent tokenizations of the same analysis and are
// not required to have matching lengths.
type Section struct {
	Words     []string `json:"words"`
	Syllables []string `json:"syllables"`
}

// Result is the canonical transcription of one sentence. A successful
// transcription always carries all three sections; the adapter rejects
// engine output with a missing section before it gets here.
type Result struct {
	Phonology Section `json:"phonology"`
	Phonetics Section `json:"phonetics"`
	Sampa     Section `json:"sampa"`
}

// Options holds the transcription options understood by the engine.
type Options struct {
	// Mono marks stress on monosyllabic words
	Mono bool

	// Exceptions is the exception-handling level (0: none, 1: basic, 2: extended)
	Exceptions int

	// Epenthesis adds an initial "e" before s+consonant clusters
	Epenthesis bool

	// Aspiration marks aspiration for word-initial "h"
	Aspiration bool

	// Rehash redistributes consonants across word boundaries
	Rehash bool

	// Stress is the character used to mark stress in SAMPA output
	Stress string
}

// DefaultOptions returns the default transcription options.
func DefaultOptions() Options {
	return Options{
		Exceptions: 1,
		Stress:     `"`,
	}
}

// Transcriber is the interface to a transcription engine.
type Transcriber interface {
	// Transcribe converts one sentence into its three-section
	// transcription. Failures are reported as *Error.
	Transcribe(ctx context.Context, sentence string, opts Options) (*Result, error)
}

// Func adapts a plain function to the Transcriber interface.
type Func func(ctx context.Context, sentence string, opts Options) (*Result, error)

// Transcribe calls f.
func (f Func) Transcribe(ctx context.Context, sentence string, opts Options) (*Result, error) {
	return f(ctx, sentence, opts)
}

// Error is a per-sentence engine failure. It never aborts a batch run:
// the harness records it and continues with the next sentence.
type Error struct {
	Sentence string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcription failed for %q: %s", e.Sentence, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }
