package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantdiary/internal/models"
	"plantdiary/internal/service"
	"plantdiary/internal/timeutil"
)

func newRecordCmd(a *app) *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Manage care records",
	}

	var (
		filterType string
		plantID    string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List care records grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if plantID != "" {
				views, err := a.records.ListByPlant(cmd.Context(), plantID)
				if err != nil {
					return err
				}
				printRecordViews(out, views)
				return nil
			}

			feed, err := a.records.Feed(cmd.Context(), models.RecordType(filterType))
			if err != nil {
				return err
			}
			if feed.Total == 0 {
				fmt.Fprintln(out, "No records found")
				return nil
			}
			for _, g := range feed.Groups {
				color.New(color.Bold).Fprintf(out, "%s (%s)\n", g.Label, g.Date)
				printRecordViews(out, g.Records)
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d records\n", feed.Total)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&filterType, "type", "t", "", "only records of this type")
	listCmd.Flags().StringVar(&plantID, "plant", "", "only records of this plant")

	var (
		recordType string
		recordTime string
		notes      string
		imageURL   string
	)
	addCmd := &cobra.Command{
		Use:   "add PLANT_ID",
		Short: "Add a care record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := models.Record{
				PlantID:  args[0],
				Type:     models.RecordType(recordType),
				Notes:    notes,
				ImageURL: imageURL,
			}
			if recordTime != "" {
				ts, err := timeutil.Parse(recordTime)
				if err != nil {
					return fmt.Errorf("invalid --time: %w", err)
				}
				rec.RecordTime = timeutil.Timestamp(ts)
			}

			created, err := a.records.Create(cmd.Context(), rec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %s at %s (%s)\n",
				color.GreenString("✓"), created.Type, timeutil.FormatDateTime(int64(created.RecordTime)), created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&recordType, "type", "t", string(models.RecordWatering), "record type")
	addCmd.Flags().StringVar(&recordTime, "time", "", "when it happened (default now)")
	addCmd.Flags().StringVarP(&notes, "notes", "n", "", "notes, markdown")
	addCmd.Flags().StringVar(&imageURL, "image", "", "image path")

	rmCmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a care record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.records.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", color.GreenString("✓"), args[0])
			return nil
		},
	}

	recordCmd.AddCommand(listCmd, addCmd, rmCmd)
	return recordCmd
}

func printRecordViews(out io.Writer, views []service.RecordView) {
	if len(views) == 0 {
		fmt.Fprintln(out, "No records found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", v.TimeText, v.TypeInfo.Icon+" "+v.TypeInfo.Label, v.PlantName, v.ID, v.Notes)
	}
	_ = w.Flush()
}
