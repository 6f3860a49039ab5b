// Terminal client for Study Buddy.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thatmoosee/Study-Buddy/client/api"
	"github.com/thatmoosee/Study-Buddy/client/config"
	"github.com/thatmoosee/Study-Buddy/client/logging"
	"github.com/thatmoosee/Study-Buddy/client/mvc"
	"github.com/thatmoosee/Study-Buddy/client/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if !terminal.IsTerminal() {
		fmt.Fprintln(os.Stderr, "studybuddy needs an interactive terminal")
		os.Exit(1)
	}

	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	client, err := api.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating API client: %v\n", err)
		os.Exit(1)
	}

	slog.Info("starting client", "backend", cfg.BaseURL)
	session := mvc.NewSession(client)

	p := tea.NewProgram(mvc.InitialHomeModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if session.Err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "could not check the session with %s: %v\n", cfg.BaseURL, session.Err)
		os.Exit(1)
	}
}
