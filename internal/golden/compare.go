package golden

import (
	"slices"

	"github.com/emmett/fonemas/internal/engine"
)

// FieldDiff records an ordered-sequence mismatch for one field of one
// section.
type FieldDiff struct {
	Expected []string `json:"expected"`
	Actual   []string `json:"actual"`
}

// SectionDiff records the field mismatches within one section. A nil
// field means that field matched.
type SectionDiff struct {
	Words     *FieldDiff `json:"words,omitempty"`
	Syllables *FieldDiff `json:"syllables,omitempty"`
}

// Diff describes where two transcriptions disagree. A nil section means
// that section matched exactly.
type Diff struct {
	Phonology *SectionDiff `json:"phonology,omitempty"`
	Phonetics *SectionDiff `json:"phonetics,omitempty"`
	Sampa     *SectionDiff `json:"sampa,omitempty"`
}

// namedSection pairs a section diff with its wire name for rendering.
type namedSection struct {
	name string
	diff *SectionDiff
}

func (d *Diff) sections() []namedSection {
	return []namedSection{
		{"phonology", d.Phonology},
		{"phonetics", d.Phonetics},
		{"sampa", d.Sampa},
	}
}

// Compare returns the structural difference between an expected and an
// actual transcription, or nil when they are identical. Sequences are
// compared element-wise, in order, for exact equality: any change in
// segmentation, even whitespace-level, registers. Equality is the pass
// condition.
func Compare(expected, actual *engine.Result) *Diff {
	d := Diff{
		Phonology: compareSection(&expected.Phonology, &actual.Phonology),
		Phonetics: compareSection(&expected.Phonetics, &actual.Phonetics),
		Sampa:     compareSection(&expected.Sampa, &actual.Sampa),
	}
	if d.Phonology == nil && d.Phonetics == nil && d.Sampa == nil {
		return nil
	}
	return &d
}

func compareSection(expected, actual *engine.Section) *SectionDiff {
	var sd SectionDiff
	if !slices.Equal(expected.Words, actual.Words) {
		sd.Words = &FieldDiff{Expected: expected.Words, Actual: actual.Words}
	}
	if !slices.Equal(expected.Syllables, actual.Syllables) {
		sd.Syllables = &FieldDiff{Expected: expected.Syllables, Actual: actual.Syllables}
	}
	if sd.Words == nil && sd.Syllables == nil {
		return nil
	}
	return &sd
}
