package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/emmett/fonemas/internal/config"
	mcpserver "github.com/emmett/fonemas/internal/server/mcp"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

var (
	configFile  = flag.String("config", "", "Path to configuration file (default: ~/.fonemasrc or /etc/fonemas/config.yaml)")
	engineCmd   = flag.String("engine", "", "Transcription engine command (default: from config)")
	goldenFile  = flag.String("golden", "", "Path to the golden dataset file (default: from config)")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("fonemas MCP v%s\n", Version)
		fmt.Printf("  Commit:  %s\n", GitCommit)
		fmt.Printf("  Branch:  %s\n", GitBranch)
		fmt.Printf("  Built:   %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.LoadWithFallback(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if *engineCmd != "" {
		cfg.Engine.Command = *engineCmd
	}
	if *goldenFile != "" {
		cfg.Golden = *goldenFile
	}

	logger := zap.NewNop()
	if *debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	server := mcpserver.NewServer(mcpserver.Config{
		ServerName:    "fonemas",
		ServerVersion: Version,
		EngineCommand: cfg.Engine.Command,
		EngineArgs:    cfg.Engine.Args,
		Options:       cfg.Options(),
		CorpusPath:    cfg.Corpus,
		GoldenPath:    cfg.Golden,
	}, logger)

	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}
