package golden

import (
	"fmt"
	"io"
	"strings"
)

// maxRenderedFailures caps how many failures the text summary shows.
// The Summary itself always holds the complete list.
const maxRenderedFailures = 10

// ExitCode derives the process exit status from a test run: 0 only when
// nothing failed and nothing errored.
func ExitCode(s Summary) int {
	if s.Failed == 0 && s.Errors == 0 {
		return 0
	}
	return 1
}

// WriteSummary renders the final report block.
func WriteSummary(w io.Writer, s Summary) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "TEST SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total tests:  %d\n", s.Total)
	fmt.Fprintf(w, "Passed:       %d (%.1f%%)\n", s.Passed, passRate(s))
	fmt.Fprintf(w, "Failed:       %d\n", s.Failed)
	fmt.Fprintf(w, "Errors:       %d\n", s.Errors)

	if len(s.Failures) > 0 {
		fmt.Fprintf(w, "\n%d FAILURES:\n", len(s.Failures))
		shown := s.Failures
		if len(shown) > maxRenderedFailures {
			shown = shown[:maxRenderedFailures]
		}
		for _, f := range shown {
			fmt.Fprintf(w, "\n  [%d] %s\n", f.Index, f.Sentence)
			if f.Err != "" {
				fmt.Fprintf(w, "    Error: %s\n", f.Err)
			} else {
				writeDiff(w, f.Diff, "    ")
			}
		}
		if rest := len(s.Failures) - maxRenderedFailures; rest > 0 {
			fmt.Fprintf(w, "\n  ... and %d more failures\n", rest)
		}
	}

	fmt.Fprintln(w, rule)
}

// writeDiff renders expected/actual detail for every differing
// section/field pair, in the fixed section order.
func writeDiff(w io.Writer, d *Diff, indent string) {
	if d == nil {
		return
	}
	for _, s := range d.sections() {
		if s.diff == nil {
			continue
		}
		fmt.Fprintf(w, "%s%s:\n", indent, s.name)
		writeFieldDiff(w, "words", s.diff.Words, indent)
		writeFieldDiff(w, "syllables", s.diff.Syllables, indent)
	}
}

func writeFieldDiff(w io.Writer, name string, fd *FieldDiff, indent string) {
	if fd == nil {
		return
	}
	fmt.Fprintf(w, "%s  %s:\n", indent, name)
	fmt.Fprintf(w, "%s    expected: %q\n", indent, fd.Expected)
	fmt.Fprintf(w, "%s    actual:   %q\n", indent, fd.Actual)
}

func passRate(s Summary) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}
