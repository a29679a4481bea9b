package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmett/fonemas/internal/engine"
)

func sampleResult() *engine.Result {
	return &engine.Result{
		Phonology: engine.Section{Words: []string{"aβeɾiɣwéis"}, Syllables: []string{"a", "βe", "ɾi", "ɣwéis"}},
		Phonetics: engine.Section{Words: []string{"aβeɾiɣwéis"}, Syllables: []string{"a", "βe", "ɾi", "ɣwéis"}},
		Sampa:     engine.Section{Words: []string{`aBeRiGw"eis`}, Syllables: []string{"a", "Be", "Ri", `Gw"eis`}},
	}
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSimpleFormatter(&buf).Write(sampleResult()))
	assert.Equal(t, "aβeɾiɣwéis\n", buf.String())
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Write(sampleResult()))

	text := buf.String()
	assert.Contains(t, text, "Phonology:\n")
	assert.Contains(t, text, "Phonetics:\n")
	assert.Contains(t, text, "SAMPA:\n")
	assert.Contains(t, text, "  Words:     aβeɾiɣwéis\n")
	assert.Contains(t, text, "  Syllables: a βe ɾi ɣwéis\n")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Write(sampleResult()))

	var decoded engine.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResult(), decoded)

	// Pretty-printed with literal non-ASCII.
	assert.Contains(t, buf.String(), "\n  \"phonology\"")
	assert.Contains(t, buf.String(), "aβeɾiɣwéis")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	f, err := New(&buf, false, "ignored")
	require.NoError(t, err)
	assert.IsType(t, &SimpleFormatter{}, f)

	f, err = New(&buf, true, "text")
	require.NoError(t, err)
	assert.IsType(t, &TextFormatter{}, f)

	f, err = New(&buf, true, "JSON")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)

	_, err = New(&buf, true, "xml")
	require.Error(t, err)
}
