package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantdiary/internal/models"
)

func newReminderCmd(a *app) *cobra.Command {
	reminderCmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage care reminders",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			list, err := a.reminders.List(cmd.Context())
			if err != nil {
				return err
			}
			if list.TotalCount == 0 {
				fmt.Fprintln(out, "No reminders")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLANT\tREMINDER\tEVERY\tNEXT\tSTATE")
			for _, r := range list.Reminders {
				state := color.GreenString("on")
				if !r.IsEnabled {
					state = color.HiBlackString("off")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.PlantName, r.Title, r.FrequencyText, r.NextText, state)
			}
			_ = w.Flush()
			fmt.Fprintf(out, "\n%d of %d active\n", list.ActiveCount, list.TotalCount)
			return nil
		},
	}

	var (
		reminderType string
		every        int
	)
	addCmd := &cobra.Command{
		Use:   "add PLANT_ID",
		Short: "Add a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.reminders.Create(cmd.Context(), models.Reminder{
				PlantID:   args[0],
				Type:      models.ReminderType(reminderType),
				Frequency: every,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added reminder %s\n", color.GreenString("✓"), created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&reminderType, "type", "t", string(models.ReminderWatering), "reminder type")
	addCmd.Flags().IntVarP(&every, "every", "e", 7, "interval in days")

	toggleCmd := &cobra.Command{
		Use:   "toggle ID",
		Short: "Enable or disable a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.reminders.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "disabled"
			if updated.IsEnabled {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reminder %s %s\n", color.GreenString("✓"), updated.ID, state)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.reminders.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", color.GreenString("✓"), args[0])
			return nil
		},
	}

	reminderCmd.AddCommand(listCmd, addCmd, toggleCmd, rmCmd)
	return reminderCmd
}
