// Copyright 2025 The SeqServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the sequence analysis server, MCP server, batch runner
and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

SeqServe answers three questions about character sequences: how often each
k-mer occurs, where a motif occurs (through a suffix array), and how far apart
two sequences are (Levenshtein distance with a severity label). Sequences are
arbitrary bytes; DNA is the usual input but nothing is validated.

# Usage

Start the msgpack IPC server with default settings:

	seqserve

Serve the analyses as MCP tools over stdio:

	seqserve -mcp

Run a YAML job file with 8 workers:

	seqserve -batch jobs.yaml -workers 8

Run in CLI mode for interactive testing, with debug logs:

	seqserve -c -d

# Configuration

Runtime configuration lives in a TOML file created with defaults on first run:

	[server]
	max_sequence_len = 1000000
	max_pattern_len = 10000
	max_top = 500
	reload_every = 500

	[engine]
	workers = 4
	default_k = 3

	[cli]
	default_top = 20
	context_width = 5
	uppercase = true
	markdown = true

A -config path takes priority over the user config dir. Server mode reloads
the file every reload_every requests.

# IPC Protocol

The server reads msgpack maps from stdin and answers each on stdout:

	{"id": "m1", "action": "motif", "s": "GATTACA", "p": "ATT"}
	{"id": "m1", "p": "ATT", "l": [1], "c": 1, "t": 12}

See package server for every action and field.

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-mcp
	    Serve MCP tools over stdio
	-batch string
	    Run the jobs of a YAML file and print a report
	-config string
	    Path to a TOML config file
	-workers int
	    Parallel jobs in batch mode (default from config)
	-wrap int
	    Word wrap width of markdown reports (0 for default)

Logs always go to stderr, stdout is reserved for protocol traffic and reports.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/seqserve/internal/batch"
	"github.com/bastiangx/seqserve/internal/cli"
	"github.com/bastiangx/seqserve/internal/logger"
	"github.com/bastiangx/seqserve/internal/report"
	"github.com/bastiangx/seqserve/internal/tools"
	"github.com/bastiangx/seqserve/internal/utils"
	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/bastiangx/seqserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version        = "0.1.0-beta"
	AppName        = "seqserve"
	configFileName = "seqserve.toml"
	gh             = "https://github.com/bastiangx/seqserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main parses flags, loads config and hands off to one of the modes.
// main() does not implement logic for them and only manages the flow.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	mcpMode := flag.Bool("mcp", false, "Serve MCP tools over stdio")
	batchFile := flag.String("batch", "", "Run the jobs of a YAML file and print a report")
	configFile := flag.String("config", "", "Path to a TOML config file")
	workers := flag.Int("workers", 0, "Parallel jobs in batch mode (default from config)")
	wrap := flag.Int("wrap", 0, "Word wrap width of markdown reports (0 for default)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	defaultPath, err := pathResolver.GetConfigPath(configFileName)
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile, defaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workers > 0 {
		appConfig.Engine.Workers = *workers
	}
	log.Debugf("Using config file: (%s)", configPath)

	switch {
	case *mcpMode:
		runMCP(appConfig)
	case *batchFile != "":
		runBatch(appConfig, *batchFile, *wrap)
	case *cliMode:
		runCLI(appConfig, pathResolver, *wrap)
	default:
		runServer(appConfig, configPath)
	}
}

func runServer(cfg *config.Config, configPath string) {
	sigHandler()
	log.Debug("spawning IPC")

	srv := server.NewServer(cfg, configPath)
	showStartupInfo(configPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func runMCP(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("spawning MCP server", "version", Version)
	if err := tools.NewServer(cfg, Version).Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

func runBatch(cfg *config.Config, path string, wrap int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := report.NewRenderer(cfg.CLI, wrap)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	opts := batch.Options{DefaultK: cfg.Engine.DefaultK, Uppercase: cfg.CLI.Uppercase}
	jobs, results, err := batch.Run(ctx, analysis.New(cfg), path, opts)
	if jobs == nil {
		log.Fatalf("Failed to load jobs: %v", err)
	}
	fmt.Print(renderer.Batch(jobs, results))
	if err != nil {
		log.Fatalf("Batch interrupted: %v", err)
	}

	for _, res := range results {
		if res.Err != nil {
			os.Exit(1)
		}
	}
}

// CLI would be mainly used for testing and dbg purposes.
// Any new features or changes should be tested in CLI mode first.
func runCLI(cfg *config.Config, pathResolver *utils.PathResolver, wrap int) {
	sigHandler()
	log.SetReportTimestamp(false)

	renderer, err := report.NewRenderer(cfg.CLI, wrap)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	inputHandler := cli.NewInputHandler(cfg, renderer, pathResolver, os.Stdout)
	if err := inputHandler.Start(os.Stdin); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SeqServe ] k-mers, motifs and mutations over msgpack")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(configPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" SeqServe  ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("config: ( %s )", configPath)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
