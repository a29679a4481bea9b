package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/emmett/fonemas/internal/config"
	"github.com/emmett/fonemas/internal/engine"
	"github.com/emmett/fonemas/internal/output"
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
	structured  = flag.Bool("structured", false, "Output the full three-section breakdown instead of a simple string")
	format      = flag.String("format", "text", "Output format for structured mode: text, json")
	mono        = flag.Bool("mono", false, "Mark stress on monosyllabic words")
	exceptions  = flag.Int("exceptions", 1, "Level of exceptions handling (0: none, 1: basic, 2: extended)")
	epenthesis  = flag.Bool("epenthesis", false, "Apply epenthesis (add initial \"e\" before s+consonant clusters)")
	aspiration  = flag.Bool("aspiration", false, "Mark aspiration for word-initial \"h\"")
	rehash      = flag.Bool("rehash", false, "Apply rehashing to redistribute consonants across word boundaries")
	stress      = flag.String("stress", `"`, "Character used to mark stress in SAMPA transcription")
	showVersion = flag.Bool("version", false, "Show version information")
)

func init() {
	flag.BoolVar(structured, "s", false, "Shorthand for -structured")
	flag.StringVar(format, "f", "text", "Shorthand for -format")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("fonemas CLI v%s\n", Version)
		fmt.Printf("  Commit:  %s\n", GitCommit)
		fmt.Printf("  Branch:  %s\n", GitBranch)
		fmt.Printf("  Built:   %s\n", BuildTime)
		os.Exit(0)
	}

	text := flag.Arg(0)
	if text == "" {
		flag.Usage()
		os.Exit(1)
	}

	if *exceptions < 0 || *exceptions > 2 {
		fmt.Fprintf(os.Stderr, "Error: exceptions must be 0, 1 or 2\n")
		os.Exit(1)
	}

	cfg, err := config.LoadWithFallback(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	command := cfg.Engine.Command
	if *engineCmd != "" {
		command = *engineCmd
	}

	opts := engine.Options{
		Mono:       *mono,
		Exceptions: *exceptions,
		Epenthesis: *epenthesis,
		Aspiration: *aspiration,
		Rehash:     *rehash,
		Stress:     *stress,
	}

	transcriber := engine.NewExec(command, cfg.Engine.Args...)
	result, err := transcriber.Transcribe(context.Background(), text, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during transcription: %v\n", err)
		os.Exit(1)
	}

	formatter, err := output.New(os.Stdout, *structured, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := formatter.Write(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] \"text\"\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Transcribe Spanish text to IPA phonological and phonetic representations.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nExamples:")
	fmt.Fprintf(os.Stderr, "  %s \"Averigüéis\"\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -s \"Averigüéis\"\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -mono -epenthesis -aspiration \"espíritu\"\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -s -f json \"México\"\n", os.Args[0])
}
