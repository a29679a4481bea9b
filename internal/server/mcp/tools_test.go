package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emmett/fonemas/internal/engine"
	"github.com/emmett/fonemas/internal/golden"
)

func echoResult(sentence string) *engine.Result {
	words := strings.Fields(sentence)
	return &engine.Result{
		Phonology: engine.Section{Words: words, Syllables: words},
		Phonetics: engine.Section{Words: words, Syllables: words},
		Sampa:     engine.Section{Words: words, Syllables: words},
	}
}

func testServer(tr engine.Transcriber, goldenPath string) *Server {
	return &Server{
		config: Config{
			Options:     engine.DefaultOptions(),
			GoldenPath:  goldenPath,
			CallTimeout: 5 * time.Second,
		},
		transcriber: tr,
		log:         zap.NewNop(),
	}
}

func TestHandleTranscribe(t *testing.T) {
	var gotOpts engine.Options
	s := testServer(engine.Func(func(ctx context.Context, sentence string, opts engine.Options) (*engine.Result, error) {
		gotOpts = opts
		return echoResult(sentence), nil
	}), "")

	mono := true
	res, _, err := s.handleTranscribe(context.Background(), nil, TranscribeArgs{Text: "buenos días", Mono: &mono, Stress: "'"})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text := res.Content[0].(*sdk.TextContent).Text
	assert.Contains(t, text, `"phonology"`)
	assert.Contains(t, text, "buenos")
	assert.True(t, gotOpts.Mono)
	assert.Equal(t, "'", gotOpts.Stress)
	assert.Equal(t, 1, gotOpts.Exceptions, "unset options keep configured values")
}

func TestHandleTranscribe_EmptyText(t *testing.T) {
	s := testServer(engine.Func(func(ctx context.Context, sentence string, opts engine.Options) (*engine.Result, error) {
		t.Fatal("engine must not be called")
		return nil, nil
	}), "")

	_, _, err := s.handleTranscribe(context.Background(), nil, TranscribeArgs{})
	require.Error(t, err)
}

func TestHandleTranscribe_EngineError(t *testing.T) {
	s := testServer(engine.Func(func(ctx context.Context, sentence string, opts engine.Options) (*engine.Result, error) {
		return nil, &engine.Error{Sentence: sentence, Message: "no vowels"}
	}), "")

	_, _, err := s.handleTranscribe(context.Background(), nil, TranscribeArgs{Text: "xyz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no vowels")
}

func TestHandleGoldenTest(t *testing.T) {
	goldenPath := filepath.Join(t.TempDir(), "golden_data.json")
	dataset := golden.Dataset{
		{Input: "hola", Result: echoResult("hola")},
		{Input: "adios", Result: echoResult("adios")},
	}
	require.NoError(t, golden.Save(dataset, goldenPath))

	s := testServer(engine.Func(func(ctx context.Context, sentence string, opts engine.Options) (*engine.Result, error) {
		return echoResult(sentence), nil
	}), goldenPath)

	res, structured, err := s.handleGoldenTest(context.Background(), nil, GoldenTestArgs{})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	summary, ok := structured.(golden.Summary)
	require.True(t, ok)
	assert.Equal(t, 2, summary.Passed)
	assert.Zero(t, summary.Failed)

	text := res.Content[0].(*sdk.TextContent).Text
	assert.Contains(t, text, "TEST SUMMARY")
	assert.Contains(t, text, "Passed:       2")
}

func TestHandleGoldenTest_RegressionSetsIsError(t *testing.T) {
	goldenPath := filepath.Join(t.TempDir(), "golden_data.json")
	stale := echoResult("hola")
	stale.Phonology.Words = []string{"antigua"}
	require.NoError(t, golden.Save(golden.Dataset{{Input: "hola", Result: stale}}, goldenPath))

	s := testServer(engine.Func(func(ctx context.Context, sentence string, opts engine.Options) (*engine.Result, error) {
		return echoResult(sentence), nil
	}), goldenPath)

	res, _, err := s.handleGoldenTest(context.Background(), nil, GoldenTestArgs{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleGoldenTest_MissingDataset(t *testing.T) {
	s := testServer(engine.Func(func(ctx context.Context, sentence string, opts engine.Options) (*engine.Result, error) {
		return echoResult(sentence), nil
	}), filepath.Join(t.TempDir(), "absent.json"))

	_, _, err := s.handleGoldenTest(context.Background(), nil, GoldenTestArgs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Run 'golden generate' first")
}
