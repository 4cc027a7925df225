// lumina - role-based AI chat for the terminal.
//
// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumina-hub/lumina-tui/internal/api"
	"github.com/lumina-hub/lumina-tui/internal/chat"
	"github.com/lumina-hub/lumina-tui/internal/cli"
	"github.com/lumina-hub/lumina-tui/internal/config"
	"github.com/lumina-hub/lumina-tui/internal/roles"
	"github.com/lumina-hub/lumina-tui/internal/storage"
	"github.com/lumina-hub/lumina-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	fileStore, err := storage.NewFileStoreWithDir(cfg.Storage.Dir)
	if err != nil {
		fatal(err)
	}
	transcripts := storage.NewTranscriptStore(fileStore)

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Timeout(),
	})
	directory := roles.NewDirectoryWithInterval(client, cfg.RefreshInterval())

	switch cmd {
	case cli.CmdRoles:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()
		if err := cli.RunRoles(ctx, directory, args.JSON); err != nil {
			fatal(err)
		}

	case cli.CmdClear:
		if err := cli.RunClear(transcripts, args.RoleID, args.All); err != nil {
			fatal(err)
		}

	case cli.CmdConfig:
		if err := cli.RunConfig(cfg, args); err != nil {
			fatal(err)
		}

	default:
		if err := runTUI(cfg, transcripts, client, directory); err != nil {
			fatal(err)
		}
	}
}

func runTUI(cfg *config.Config, transcripts *storage.TranscriptStore, client *api.Client, directory *roles.Directory) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial refresh plus the periodic refresh loop. Run off the
	// startup path so an unreachable backend cannot delay the TUI;
	// built-ins render immediately either way.
	go directory.Start(ctx)
	defer directory.Stop()

	session := chat.NewSession(transcripts, client)
	app := ui.NewApp(directory, session, cfg)

	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "lumina: %v\n", err)
	os.Exit(1)
}
