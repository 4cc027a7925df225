// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses lumina's command line and implements the headless
// commands. With no arguments the binary starts the TUI; everything else
// runs without a terminal UI and exits.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdRoles
	CmdClear
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON bool // machine-readable output where supported

	// Command-specific
	RoleID     string // clear <role>
	All        bool   // clear --all
	Subcommand string // config [show|set|path]
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `lumina - role-based AI chat for the terminal

Pick an assistant role, chat with it, and come back later: every role
keeps its own conversation history on disk.

Usage:
  lumina                      Start the TUI (default)
  lumina roles [--json]       List all available roles
  lumina clear <role-id>      Delete a role's conversation history
  lumina clear --all          Delete all conversation histories
  lumina config [show]        Show effective configuration
  lumina config set <k> <v>   Set a configuration value
  lumina config path          Print the config file location
  lumina version              Print version information
  lumina help                 Show this help

Configuration lives in ~/.lumina/config.toml (override with LUMINA_HOME).
Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("lumina version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	raw := os.Args[1:]

	var args Args
	var positional []string
	for _, a := range raw {
		switch a {
		case "--json":
			args.JSON = true
		case "--all", "-a":
			args.All = true
		default:
			positional = append(positional, a)
		}
	}

	if len(positional) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(positional[0])
	rest := positional[1:]
	args.Raw = rest

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "roles", "list":
		return CmdRoles, args

	case "clear":
		if len(rest) > 0 {
			args.RoleID = rest[0]
		}
		return CmdClear, args

	case "config":
		if len(rest) > 0 {
			args.Subcommand = strings.ToLower(rest[0])
		}
		if len(rest) > 1 {
			args.ConfigKey = rest[1]
		}
		if len(rest) > 2 {
			args.ConfigVal = strings.Join(rest[2:], " ")
		}
		return CmdConfig, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "lumina: unknown command %q\n\n", cmd)
		return CmdHelp, args
	}
}
