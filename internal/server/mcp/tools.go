package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/emmett/fonemas/internal/golden"
)

type TranscribeArgs struct {
	Text       string `json:"text" jsonschema:"required,description=Spanish text to transcribe"`
	Mono       *bool  `json:"mono,omitempty" jsonschema:"description=Mark stress on monosyllabic words"`
	Exceptions *int   `json:"exceptions,omitempty" jsonschema:"description=Exception-handling level 0-2 (default: 1)"`
	Epenthesis *bool  `json:"epenthesis,omitempty" jsonschema:"description=Add initial e before s+consonant clusters"`
	Aspiration *bool  `json:"aspiration,omitempty" jsonschema:"description=Mark aspiration for word-initial h"`
	Rehash     *bool  `json:"rehash,omitempty" jsonschema:"description=Redistribute consonants across word boundaries"`
	Stress     string `json:"stress,omitempty" jsonschema:"description=Stress-marking character for SAMPA output"`
}

type GoldenTestArgs struct {
	Golden  string `json:"golden,omitempty" jsonschema:"description=Path to the golden dataset file (default: configured path)"`
	Jobs    int    `json:"jobs,omitempty" jsonschema:"description=Maximum concurrent transcriptions (default: 1)"`
	Verbose bool   `json:"verbose,omitempty" jsonschema:"description=Include a per-sentence result line"`
}

func (s *Server) handleTranscribe(ctx context.Context, req *sdk.CallToolRequest, args TranscribeArgs) (*sdk.CallToolResult, any, error) {
	if args.Text == "" {
		return nil, nil, fmt.Errorf("text must not be empty")
	}

	opts := s.config.Options
	if args.Mono != nil {
		opts.Mono = *args.Mono
	}
	if args.Exceptions != nil {
		opts.Exceptions = *args.Exceptions
	}
	if args.Epenthesis != nil {
		opts.Epenthesis = *args.Epenthesis
	}
	if args.Aspiration != nil {
		opts.Aspiration = *args.Aspiration
	}
	if args.Rehash != nil {
		opts.Rehash = *args.Rehash
	}
	if args.Stress != "" {
		opts.Stress = args.Stress
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.CallTimeout)
	defer cancel()

	result, err := s.transcriber.Transcribe(ctx, args.Text, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("transcription failed: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func (s *Server) handleGoldenTest(ctx context.Context, req *sdk.CallToolRequest, args GoldenTestArgs) (*sdk.CallToolResult, any, error) {
	goldenPath := args.Golden
	if goldenPath == "" {
		goldenPath = s.config.GoldenPath
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.CallTimeout)
	defer cancel()

	var report bytes.Buffer
	runner := golden.NewRunner(s.transcriber, golden.Config{
		Options: s.config.Options,
		Jobs:    args.Jobs,
		Verbose: args.Verbose,
		Out:     &report,
		Logger:  s.log,
	})

	summary, err := runner.TestFile(ctx, goldenPath)
	if err != nil {
		return nil, nil, fmt.Errorf("golden test failed to start: %w", err)
	}
	golden.WriteSummary(&report, summary)

	s.log.Info("golden test completed",
		zap.Int("total", summary.Total),
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
		zap.Int("errors", summary.Errors))

	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: report.String()},
		},
		IsError: golden.ExitCode(summary) != 0,
	}, summary, nil
}
