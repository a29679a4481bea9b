// Package golden implements a golden-master regression harness for the
// transcription engine: it captures a trusted baseline over a fixed
// corpus and compares later engine output against it, reporting any
// divergence at section/field granularity.
package golden

import (
	"encoding/json"
	"fmt"

	"github.com/emmett/fonemas/internal/engine"
)

// Entry is one golden dataset record: either the captured transcription
// for a corpus sentence or the error the engine produced at capture
// time. Error entries mark known-unprocessable inputs and are excluded
// from later comparison.
type Entry struct {
	Input  string
	Result *engine.Result
	Err    string
}

// IsError reports whether the entry is the error variant.
func (e Entry) IsError() bool { return e.Err != "" }

// Dataset is the ordered golden entry sequence, one entry per corpus
// sentence, in corpus order.
type Dataset []Entry

// entryJSON is the wire shape of an Entry. Error entries serialize only
// input and error; result entries serialize input and the three named
// sections.
type entryJSON struct {
	Input     string          `json:"input"`
	Error     string          `json:"error,omitempty"`
	Phonology *engine.Section `json:"phonology,omitempty"`
	Phonetics *engine.Section `json:"phonetics,omitempty"`
	Sampa     *engine.Section `json:"sampa,omitempty"`
}

// MarshalJSON serializes the tagged union.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Err != "" {
		return json.Marshal(entryJSON{Input: e.Input, Error: e.Err})
	}
	if e.Result == nil {
		return nil, fmt.Errorf("entry %q has neither result nor error", e.Input)
	}
	return json.Marshal(entryJSON{
		Input:     e.Input,
		Phonology: &e.Result.Phonology,
		Phonetics: &e.Result.Phonetics,
		Sampa:     &e.Result.Sampa,
	})
}

// UnmarshalJSON reconstructs the tagged union, rejecting entries that
// match neither variant.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w entryJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Input == "" {
		return fmt.Errorf("entry missing input sentence")
	}
	e.Input = w.Input
	if w.Error != "" {
		e.Err = w.Error
		e.Result = nil
		return nil
	}
	if w.Phonology == nil || w.Phonetics == nil || w.Sampa == nil {
		return fmt.Errorf("entry %q missing transcription sections", w.Input)
	}
	e.Err = ""
	e.Result = &engine.Result{
		Phonology: *w.Phonology,
		Phonetics: *w.Phonetics,
		Sampa:     *w.Sampa,
	}
	return nil
}
