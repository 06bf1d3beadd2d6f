// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles store/repo lifecycle and sync engine wiring via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/remote"
	"github.com/harperreed/fittrack/internal/repo"
	"github.com/harperreed/fittrack/internal/store"
	syncpkg "github.com/harperreed/fittrack/internal/sync"
)

var (
	kvStore  store.KV
	dataRepo *repo.Repository
	syncCfg  *syncpkg.Config
	syncer   *syncpkg.Syncer
	logger   *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Local-first workout tracker",
	Long: `Fittrack is a local-first CLI for tracking workouts, routines, and
body measurements. All data lives on this device; an optional sync
server replicates it across devices.

QUICK START:

  $ fittrack log "Leg Day" --set "Squat:100x5" --set "Squat:100x5"
  $ fittrack history                      # See recent sessions
  $ fittrack routine add "Push Day" --exercise "Bench Press:3x8"
  $ fittrack measure add weight 82.5      # Log a body measurement

ROUTINES:

  $ fittrack routine list                 # List saved routines
  $ fittrack routine show <id>            # View a routine
  $ fittrack routine delete <id>          # Delete a routine

SYNC (OPTIONAL):

  Workouts and history sync with a fittrack server. Local edits always
  win: rows you changed offline are never overwritten by a pull.

  $ fittrack sync login --server https://... --user <id> --token <tok>
  $ fittrack sync now                     # Push then pull
  $ fittrack sync status                  # Show sync state
  $ fittrack sync logout                  # Forget credentials

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Rows are stored as JSON tables in a local key-value store at
  ~/.local/share/fittrack (badger by default; sqlite and charm
  backends are available via config.json).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
		})

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		kvStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		dataRepo = repo.New(kvStore, logger)

		syncCfg, err = syncpkg.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load sync config: %w", err)
		}
		if syncCfg.IsConfigured() {
			client := remote.NewHTTPClient(syncCfg.Server, syncCfg.Token)
			syncer = syncpkg.NewSyncer(syncCfg, dataRepo, client, logger)
		}

		// Sync on startup when enabled, except for the sync command
		// itself (it manages its own cycle) and the long-running mcp
		// server.
		if syncer != nil && syncCfg.AutoSync && !underCommand(cmd, "sync") && cmd.Name() != "mcp" {
			syncer.Sync(cmd.Context())
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if kvStore != nil {
			return kvStore.Close()
		}
		return nil
	},
}

// underCommand reports whether cmd or any of its ancestors has the
// given name.
func underCommand(cmd *cobra.Command, name string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
