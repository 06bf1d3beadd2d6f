// ABOUTME: CLI commands for sync: login, logout, status, and manual trigger.
// ABOUTME: Sync credentials persist in sync.json under XDG config.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
	syncpkg "github.com/harperreed/fittrack/internal/sync"
)

var (
	syncServer   string
	syncUser     string
	syncToken    string
	syncAutoSync bool
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync workouts and history with a server",
	Long: `Sync workouts and history with a fittrack server.

Sync is push-then-pull: local pending rows are uploaded first, then the
server's state is fetched. Rows you changed locally are never
overwritten by a pull; they stay pending until their own upload
succeeds.

GETTING STARTED:

  1. Log in with your server and credentials:
     fittrack sync login --server https://fit.example.com --user <id> --token <tok>

  2. Sync manually, or pass --auto to sync on every command:
     fittrack sync now

COMMANDS:

  login    Store server credentials
  logout   Forget credentials (local data is preserved)
  status   Show sync configuration and pending counts
  now      Run one push-then-pull cycle`,
}

var syncLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store sync credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		if syncServer == "" || syncUser == "" || syncToken == "" {
			return fmt.Errorf("--server, --user, and --token are all required")
		}

		syncCfg.Server = syncServer
		syncCfg.UserID = syncUser
		syncCfg.Token = syncToken
		syncCfg.AutoSync = syncAutoSync

		if err := syncpkg.SaveConfig(syncCfg); err != nil {
			return fmt.Errorf("failed to save sync config: %w", err)
		}

		color.Green("✓ Sync configured")
		fmt.Printf("  Server: %s\n", syncCfg.Server)
		fmt.Printf("  Device: %s\n", syncCfg.DeviceID)
		return nil
	},
}

var syncLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget sync credentials",
	Long: `Forget sync credentials.

Local data is preserved. Rows already marked synced keep that status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := syncpkg.ClearConfig(); err != nil {
			return fmt.Errorf("failed to clear sync config: %w", err)
		}
		color.Green("✓ Logged out")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !syncCfg.IsConfigured() {
			color.Yellow("Sync is not configured")
			fmt.Println("\nRun 'fittrack sync login' to connect to a server.")
			return nil
		}

		fmt.Println("Server:", syncCfg.Server)
		fmt.Println("User:  ", syncCfg.UserID)
		fmt.Println("Device:", syncCfg.DeviceID)
		fmt.Println()

		pendingWorkouts := 0
		for _, w := range dataRepo.AllWorkouts() {
			if w.SyncStatus == models.SyncPending {
				pendingWorkouts++
			}
		}
		pendingLogs := 0
		for _, l := range dataRepo.GetHistory() {
			if l.SyncStatus == models.SyncPending {
				pendingLogs++
			}
		}

		color.Green("✓ Configured")
		fmt.Printf("  Pending routines: %d\n", pendingWorkouts)
		fmt.Printf("  Pending sessions: %d\n", pendingLogs)
		fmt.Printf("  Auto-sync: %v\n", syncCfg.AutoSync)
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Run one sync cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if syncer == nil {
			color.Yellow("Sync is not configured")
			fmt.Println("\nRun 'fittrack sync login' to connect to a server.")
			return nil
		}

		syncer.Sync(cmd.Context())
		color.Green("✓ Sync complete")
		return nil
	},
}

func init() {
	syncLoginCmd.Flags().StringVar(&syncServer, "server", "", "sync server base URL")
	syncLoginCmd.Flags().StringVar(&syncUser, "user", "", "user ID")
	syncLoginCmd.Flags().StringVar(&syncToken, "token", "", "API token")
	syncLoginCmd.Flags().BoolVar(&syncAutoSync, "auto", false, "sync automatically on every command")

	syncCmd.AddCommand(syncLoginCmd)
	syncCmd.AddCommand(syncLogoutCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	rootCmd.AddCommand(syncCmd)
}
