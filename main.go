package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"findt/internal/clipboard"
	"findt/internal/domain"
	"findt/internal/match"
	"findt/internal/scan"
	"findt/internal/ui"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fancy      bool
		searchPath string
		showHidden bool
	)

	cmd := &cobra.Command{
		Use:     "findt [query]",
		Short:   "findt - Beautiful Fuzzy Finder",
		Long:    "findt - an interactive terminal file finder with exact and fuzzy search modes.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		Example: `  findt                    # Launch in the current directory
  findt search_term        # Launch with a pre-filled search
  findt --fancy term       # Launch in fancy fuzzy mode`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return run(query, searchPath, fancy, showHidden)
		},
	}

	cmd.Flags().BoolVar(&fancy, "fancy", false, "start in fancy fuzzy mode")
	cmd.Flags().StringVar(&searchPath, "path", ".", "directory to search in")
	cmd.Flags().BoolVar(&showHidden, "hidden", false, "include hidden files and directories")
	return cmd
}

func run(query, searchPath string, fancy, showHidden bool) error {
	absDir, err := filepath.Abs(searchPath)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %q does not exist", searchPath)
	}

	setupLogging()

	copier := clipboard.Detect()
	matcher := match.New(match.PartialRatioScorer{}, match.DefaultConfig())

	mode := domain.ModeExact
	if fancy {
		if matcher.FuzzyAvailable() {
			mode = domain.ModeFuzzy
		} else {
			fmt.Println("⚠️ Warning: fuzzy matching not available, using normal mode")
		}
	}

	model := ui.NewModel(matcher, copier, query, mode)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interrupts quit the loop cleanly; the farewell below still prints.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	scanner := scan.New(scan.Options{
		IncludeHidden: showHidden,
		Progress: func(count int, dir string) {
			p.Send(ui.ScanProgressMsg{Progress: domain.ScanProgress{
				FilesFound:  count,
				CurrentPath: dir,
			}})
		},
	})
	go func() {
		entries, err := scanner.Scan(ctx, absDir)
		p.Send(ui.ScanCompletedMsg{Entries: entries, Err: err})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	fmt.Println("👋 Goodbye!")
	return nil
}

// setupLogging sends the debug log to a file when FINDT_DEBUG is set and
// discards it otherwise, keeping log output off the interactive screen.
func setupLogging() {
	if os.Getenv("FINDT_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return
	}
	logFile, err := os.OpenFile("findt.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("could not open log file: %v", err)
		return
	}
	log.SetOutput(logFile)
}
