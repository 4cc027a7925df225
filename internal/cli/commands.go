// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/lumina-hub/lumina-tui/internal/config"
	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/roles"
	"github.com/lumina-hub/lumina-tui/internal/search"
	"github.com/lumina-hub/lumina-tui/internal/storage"
	"github.com/lumina-hub/lumina-tui/internal/util"
)

// =============================================================================
// ROLES
// =============================================================================

// RunRoles lists the full role catalog, grouped by category. The directory
// is refreshed first so custom roles are current; a failed refresh still
// lists the built-ins.
func RunRoles(ctx context.Context, dir *roles.Directory, jsonOut bool) error {
	dir.Refresh(ctx)
	catalog := dir.Catalog()

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	if err := dir.LastError(); err != nil {
		color.Yellow("warning: backend unreachable, custom roles unavailable (%v)", err)
	}

	grouped := search.Group(catalog)
	header := color.New(color.FgYellow, color.Bold)
	muted := color.New(color.Faint)

	for _, cat := range grouped.Categories {
		icon := model.CategoryIcons[cat]
		if icon == "" {
			icon = "📁"
		}
		header.Printf("%s %s\n", icon, cat)
		for _, p := range grouped.Groups[cat] {
			name := p.Emoji + " " + p.Name
			pad := 28 - runewidth.StringWidth(name)
			if pad < 1 {
				pad = 1
			}
			fmt.Printf("  %s%*s", name, pad, "")
			muted.Printf("%s  (%s)\n", util.TruncateWidth(util.Flatten(p.Description), 60), p.ID)
		}
		fmt.Println()
	}
	fmt.Printf("%d roles\n", grouped.Total)
	return nil
}

// =============================================================================
// CLEAR
// =============================================================================

// RunClear deletes one role's transcript, or every transcript with --all.
func RunClear(store *storage.TranscriptStore, roleID string, all bool) error {
	switch {
	case all:
		if err := store.ClearAll(); err != nil {
			return err
		}
		color.Green("Cleared all conversation histories.")
		return nil

	case roleID != "":
		if !store.Exists(roleID) {
			color.Yellow("No conversation history for %q.", roleID)
			return nil
		}
		if err := store.Clear(roleID); err != nil {
			return err
		}
		color.Green("Cleared conversation history for %q.", roleID)
		return nil

	default:
		return fmt.Errorf("usage: lumina clear <role-id> | lumina clear --all")
	}
}

// =============================================================================
// CONFIG
// =============================================================================

// RunConfig implements `lumina config [show|set|path]`.
func RunConfig(cfg *config.Config, args Args) error {
	switch args.Subcommand {
	case "", "show":
		return showConfig(cfg)

	case "path":
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			return fmt.Errorf("usage: lumina config set <key> <value>")
		}
		if err := setConfigKey(cfg, args.ConfigKey, args.ConfigVal); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		color.Green("Set %s = %s", args.ConfigKey, args.ConfigVal)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand %q", args.Subcommand)
	}
}

func showConfig(cfg *config.Config) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	key := color.New(color.FgCyan)

	fmt.Printf("# %s\n", path)
	key.Print("backend.base_url")
	fmt.Printf("     = %s\n", cfg.Backend.BaseURL)
	key.Print("backend.timeout_secs")
	fmt.Printf(" = %d\n", cfg.Backend.TimeoutSecs)
	key.Print("backend.refresh_mins")
	fmt.Printf(" = %d\n", cfg.Backend.RefreshMins)
	key.Print("storage.dir")
	fmt.Printf("          = %s\n", cfg.Storage.Dir)
	key.Print("ui.markdown")
	fmt.Printf("          = %t\n", cfg.UI.Markdown)
	return nil
}

func setConfigKey(cfg *config.Config, key, val string) error {
	switch key {
	case "backend.base_url":
		cfg.Backend.BaseURL = val
	case "backend.timeout_secs":
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
		cfg.Backend.TimeoutSecs = n
	case "backend.refresh_mins":
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
		cfg.Backend.RefreshMins = n
	case "storage.dir":
		cfg.Storage.Dir = val
	case "ui.markdown":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		cfg.UI.Markdown = b
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}
