package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantdiary/internal/service"
	"plantdiary/internal/timeutil"
)

func newCleanupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove records and reminders of deleted plants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.storage.Cleanup(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %d records and %d reminders\n",
				color.GreenString("✓"), result.RecordsRemoved, result.RemindersRemoved)
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show store usage and the user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info, err := a.storage.Info(cmd.Context())
			if err != nil {
				return err
			}
			user, err := a.storage.UserInfo(cmd.Context())
			if err != nil {
				return err
			}

			usage := color.GreenString("%.2f%%", info.UsagePercent)
			if info.UsagePercent >= 90 {
				usage = color.RedString("%.2f%%", info.UsagePercent)
			}
			fmt.Fprintf(out, "Store:  %d of %d bytes (%s)\n", info.CurrentSize, info.LimitSize, usage)
			fmt.Fprintf(out, "Keys:   %v\n", info.Keys)
			fmt.Fprintf(out, "User:   %s\n", user.Nickname)
			if user.LastSyncTime != nil {
				fmt.Fprintf(out, "Synced: %s\n", timeutil.FormatDateTime(int64(*user.LastSyncTime)))
			}
			return nil
		},
	}
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Show the sync queue and attempt a sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			status, err := a.sync.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Pending operations: %d\n", status.State.PendingCount)
			if status.State.LastSyncTime != nil {
				fmt.Fprintf(out, "Last sync: %s\n", timeutil.FormatDateTime(int64(*status.State.LastSyncTime)))
			}

			err = a.sync.Sync(cmd.Context())
			if errors.Is(err, service.ErrSyncUnavailable) {
				fmt.Fprintln(out, color.YellowString("No sync remote is configured; data stays local."))
				return nil
			}
			return err
		},
	}
}
