package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantdiary/internal/stats"
)

const barWidth = 30

func newStatsCmd(a *app) *cobra.Command {
	var (
		days   int
		months int
		top    int
	)
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)

			summary, err := a.stats.Overview(ctx)
			if err != nil {
				return err
			}
			bold.Fprintln(out, "Overview")
			fmt.Fprintf(out, "  plants %d  records %d  reminders %d (%d active)\n\n",
				summary.Plants, summary.Records, summary.Reminders, summary.ActiveReminders)

			types, err := a.stats.Types(ctx)
			if err != nil {
				return err
			}
			bold.Fprintf(out, "Records this month (%d)\n", types.Total)
			for _, t := range types.Types {
				fmt.Fprintf(out, "  %s %-12s %4d %5.1f%%\n", t.Icon, t.Label, t.Count, t.Percent)
			}
			fmt.Fprintln(out)

			daily, err := a.stats.DailyTrend(ctx, days)
			if err != nil {
				return err
			}
			bold.Fprintln(out, "Daily trend")
			printTrend(out, daily)
			fmt.Fprintln(out)

			monthly, err := a.stats.MonthlyTrend(ctx, months)
			if err != nil {
				return err
			}
			bold.Fprintln(out, "Monthly trend")
			printTrend(out, monthly)
			fmt.Fprintln(out)

			statuses, err := a.stats.Status(ctx)
			if err != nil {
				return err
			}
			bold.Fprintln(out, "Plant health")
			for _, s := range statuses {
				fmt.Fprintf(out, "  %s %-12s %4d %5.1f%%\n", s.Icon, s.Label, s.Count, s.Percent)
			}
			fmt.Fprintln(out)

			ranking, err := a.stats.Activity(ctx)
			if err != nil {
				return err
			}
			bold.Fprintln(out, "Most cared for")
			for i, p := range ranking {
				if i == top {
					break
				}
				fmt.Fprintf(out, "  %d. %-20s %d records\n", i+1, p.Plant.Name, p.RecordCount)
			}
			return nil
		},
	}
	statsCmd.Flags().IntVar(&days, "days", 0, "daily trend window (default from TREND_DAYS)")
	statsCmd.Flags().IntVar(&months, "months", 0, "monthly trend window (default 6)")
	statsCmd.Flags().IntVar(&top, "top", 5, "plants in the activity ranking")
	return statsCmd
}

func printTrend(out io.Writer, points []stats.TrendPoint) {
	bar := color.New(color.FgGreen)
	for _, p := range points {
		width := int(p.Percent * barWidth / 100)
		fmt.Fprintf(out, "  %-7s %s %d\n", p.Label, bar.Sprint(strings.Repeat("█", width)), p.Count)
	}
}

func newHeatmapCmd(a *app) *cobra.Command {
	var (
		year  int
		month int
	)
	heatmapCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Print the care calendar of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cal, err := a.stats.Heatmap(cmd.Context(), year, time.Month(month))
			if err != nil {
				return err
			}
			printHeatmap(cmd.OutOrStdout(), cal)
			return nil
		},
	}
	heatmapCmd.Flags().IntVarP(&year, "year", "y", 0, "year (default current)")
	heatmapCmd.Flags().IntVarP(&month, "month", "m", 0, "month 1-12 (default current)")
	return heatmapCmd
}

var levelColors = []*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.BgGreen, color.FgBlack),
	color.New(color.BgHiGreen, color.FgBlack),
}

func printHeatmap(out io.Writer, cal stats.Calendar) {
	color.New(color.Bold).Fprintf(out, "%s %d\n", cal.Month, cal.Year)
	fmt.Fprintln(out, " Mo Tu We Th Fr Sa Su")
	for _, week := range cal.Weeks {
		for _, c := range week {
			if c.Level == stats.LevelPadding {
				fmt.Fprint(out, "   ")
				continue
			}
			fmt.Fprint(out, " "+levelColors[c.Level].Sprintf("%2d", c.Day))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%d records, busiest day %d\n", cal.Total, cal.Max)
	fmt.Fprint(out, "Less ")
	for _, c := range levelColors {
		fmt.Fprint(out, c.Sprint("■"))
	}
	fmt.Fprintln(out, " More")
}
