package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/emilbergold/mentora/internal/cli"
	"github.com/emilbergold/mentora/internal/genai"
	"github.com/emilbergold/mentora/internal/studio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := genai.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var observer genai.Observer = genai.NoopObserver{}
	if cfg.LogCalls {
		observer = genai.NewLogObserver(os.Stderr)
	}
	client := genai.NewGeminiClient(cfg, observer)

	app := &cli.App{
		Transcribe: studio.NewTranscribeService(client),
		Modules:    studio.NewModuleService(client),
		Summaries:  studio.NewSummaryService(client),
		Challenges: studio.NewChallengeService(client),
		Images:     studio.NewImageService(client),
		Search:     studio.NewSearchService(client),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
