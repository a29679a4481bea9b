package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/emmett/fonemas/internal/engine"
)

// Formatter is the interface for transcription output formatters
type Formatter interface {
	// Write renders one transcription result
	Write(result *engine.Result) error
}

// SimpleFormatter outputs the space-joined phonological word sequence.
// This is the default, non-structured rendering.
type SimpleFormatter struct {
	writer io.Writer
}

// NewSimpleFormatter creates a new simple formatter
func NewSimpleFormatter(writer io.Writer) *SimpleFormatter {
	return &SimpleFormatter{writer: writer}
}

// Write renders the phonology words on a single line
func (s *SimpleFormatter) Write(result *engine.Result) error {
	_, err := fmt.Fprintln(s.writer, strings.Join(result.Phonology.Words, " "))
	return err
}

// TextFormatter outputs the full three-section breakdown as labeled text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(writer io.Writer) *TextFormatter {
	return &TextFormatter{writer: writer}
}

// Write renders each section with its word and syllable sequences
func (t *TextFormatter) Write(result *engine.Result) error {
	sections := []struct {
		name    string
		section engine.Section
	}{
		{"Phonology", result.Phonology},
		{"Phonetics", result.Phonetics},
		{"SAMPA", result.Sampa},
	}
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(t.writer); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(t.writer, "%s:\n", s.name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(t.writer, "  Words:     %s\n", strings.Join(s.section.Words, " ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(t.writer, "  Syllables: %s\n", strings.Join(s.section.Syllables, " ")); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter outputs the full three-section breakdown as pretty JSON
type JSONFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(writer io.Writer) *JSONFormatter {
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return &JSONFormatter{encoder: encoder}
}

// Write renders the result as an indented JSON object
func (j *JSONFormatter) Write(result *engine.Result) error {
	return j.encoder.Encode(result)
}

// New returns the formatter for the given structured format name.
func New(writer io.Writer, structured bool, format string) (Formatter, error) {
	if !structured {
		return NewSimpleFormatter(writer), nil
	}
	switch strings.ToLower(format) {
	case "text":
		return NewTextFormatter(writer), nil
	case "json":
		return NewJSONFormatter(writer), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
