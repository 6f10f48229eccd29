package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musekit/muse/internal/cli"
	"github.com/musekit/muse/internal/config"
	"github.com/musekit/muse/internal/gemini"
	"github.com/musekit/muse/internal/server"
	"github.com/musekit/muse/internal/service"
	"github.com/musekit/muse/internal/ui"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`muse - form-driven creative content generation in the terminal

USAGE:
    muse [OPTIONS] [COMMAND]

OPTIONS:
    --help          Show this help information
    --version       Print version information
    --api           Start the HTTP API server
    --port          Port for the API server (default: 8080)
    --timeout       Generation timeout for the API server, in seconds (default: 120)
    --model         Override the generation model

COMMANDS:
    (no command)       Start interactive TUI mode
    categories         List template categories
    list, ls           List templates
    search <query>     Fuzzy-search templates
    get, show <id>     Show a template and its parameters
    render <id>        Build the prompt without generating
    generate <id>      Generate content
    help               Show CLI command help

EXAMPLES:
    muse                                             # Start interactive mode
    muse --api --port 9000                           # Start the HTTP API
    muse list --category Poem                        # List poem templates
    muse show haiku-poem                             # Inspect a template
    muse render haiku-poem --param topic=autumn      # Dry-run the prompt
    muse generate haiku-poem --param topic=autumn    # Generate a haiku
    muse generate story-general \
      --param protagonist="a retired lighthouse keeper" \
      --param plot_hook="a ship that should not exist" \
      --output story.md

CONFIGURATION:
    GEMINI_API_KEY      API key for generation (required for generate)
    MUSE_MODEL          Generation model (default: %s)
    MUSE_CONFIG         Path to a YAML config file
                        (default: ~/.config/muse/config.yaml)
    A .env file in the working directory is loaded automatically.
`, config.DefaultModel)
}

func main() {
	var showVersion bool
	var showHelp bool
	var apiServer bool
	var port int
	var timeout int
	var model string

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&apiServer, "api", false, "Start the HTTP API server")
	flag.IntVar(&port, "port", 0, "Port for the API server")
	flag.IntVar(&timeout, "timeout", 0, "Generation timeout for the API server, in seconds")
	flag.StringVar(&model, "model", "", "Override the generation model")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("muse version %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if model != "" {
		cfg.Model = model
	}
	if port != 0 {
		cfg.Port = port
	}

	client := gemini.NewClient(cfg.APIKey, cfg.Model, gemini.Options{
		Temperature: cfg.Temperature,
		TopK:        cfg.TopK,
		TopP:        cfg.TopP,
	})
	svc := service.NewService(client)

	if apiServer {
		srv := server.NewServer(svc, cfg.Port)
		if timeout > 0 {
			srv.SetTimeout(time.Duration(timeout) * time.Second)
		}
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// CLI mode - execute command and exit
	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.NewCLI(svc, cfg.Model)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// No arguments provided - start TUI mode
	m, err := ui.NewModel(svc, client, cfg.Model)
	if err != nil {
		fmt.Println(err)
		return
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return
	}
}
