package mcp

import (
	"context"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/emmett/fonemas/internal/engine"
)

type Config struct {
	ServerName    string
	ServerVersion string
	EngineCommand string
	EngineArgs    []string
	Options       engine.Options
	CorpusPath    string
	GoldenPath    string

	// CallTimeout bounds each tool invocation (default 60s).
	CallTimeout time.Duration
}

type Server struct {
	config      Config
	mcpServer   *sdk.Server
	transcriber engine.Transcriber
	log         *zap.Logger
}

func NewServer(cfg Config, log *zap.Logger) *Server {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		config:      cfg,
		transcriber: engine.NewExec(cfg.EngineCommand, cfg.EngineArgs...),
		log:         log,
	}

	// Create MCP server
	s.mcpServer = sdk.NewServer(&sdk.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}, nil)

	// Register tools
	s.registerTools()

	return s
}

func (s *Server) Start() error {
	return s.mcpServer.Run(context.Background(), &sdk.StdioTransport{})
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "transcribe",
		Description: "Transcribe Spanish text into phonology, phonetics and SAMPA sections",
	}, s.handleTranscribe)

	sdk.AddTool(s.mcpServer, &sdk.Tool{
		Name:        "golden_test",
		Description: "Run the golden-master regression test against the stored baseline",
	}, s.handleGoldenTest)
}
