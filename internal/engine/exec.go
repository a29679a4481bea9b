package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Exec invokes an external transcription engine binary once per sentence
// and reshapes its structured JSON output into the canonical Result. The
// engine is assumed deterministic and side-effect-free, so there are no
// retries.
type Exec struct {
	command string
	args    []string
}

// NewExec creates an Exec transcriber for the given engine command.
// Extra args are passed before the per-sentence arguments on every call.
func NewExec(command string, args ...string) *Exec {
	return &Exec{command: command, args: args}
}

// execResult mirrors the engine's native --format json output. Sections
// are pointers so that a section the engine failed to emit is detectable.
type execResult struct {
	Phonology *Section `json:"phonology"`
	Phonetics *Section `json:"phonetics"`
	Sampa     *Section `json:"sampa"`
}

// Transcribe runs the engine for a single sentence.
func (e *Exec) Transcribe(ctx context.Context, sentence string, opts Options) (*Result, error) {
	cmd := exec.CommandContext(ctx, e.command, e.buildArgs(sentence, opts)...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, &Error{Sentence: sentence, Message: strings.TrimSpace(string(ee.Stderr)), Err: err}
		}
		return nil, &Error{Sentence: sentence, Message: fmt.Sprintf("failed to run engine: %v", err), Err: err}
	}

	var native execResult
	if err := json.Unmarshal(out, &native); err != nil {
		return nil, &Error{Sentence: sentence, Message: fmt.Sprintf("failed to parse engine output: %v", err), Err: err}
	}

	return native.canonical(sentence)
}

func (e *Exec) buildArgs(sentence string, opts Options) []string {
	args := append([]string{}, e.args...)
	args = append(args, "--structured", "--format", "json")
	if opts.Mono {
		args = append(args, "--mono")
	}
	args = append(args, "--exceptions", strconv.Itoa(opts.Exceptions))
	if opts.Epenthesis {
		args = append(args, "--epenthesis")
	}
	if opts.Aspiration {
		args = append(args, "--aspiration")
	}
	if opts.Rehash {
		args = append(args, "--rehash")
	}
	if opts.Stress != "" {
		args = append(args, "--stress", opts.Stress)
	}
	return append(args, sentence)
}

// canonical converts the native engine output into a Result. A missing
// section is an engine defect and is reported as an *Error, never
// papered over. Slices are taken as delivered: no reordering, no
// normalization.
func (r *execResult) canonical(sentence string) (*Result, error) {
	sections := []struct {
		name string
		src  *Section
	}{
		{"phonology", r.Phonology},
		{"phonetics", r.Phonetics},
		{"sampa", r.Sampa},
	}
	for _, s := range sections {
		if s.src == nil {
			return nil, &Error{Sentence: sentence, Message: fmt.Sprintf("engine output missing %q section", s.name)}
		}
	}
	return &Result{
		Phonology: *r.Phonology,
		Phonetics: *r.Phonetics,
		Sampa:     *r.Sampa,
	}, nil
}
