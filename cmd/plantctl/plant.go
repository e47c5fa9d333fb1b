package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plantdiary/internal/models"
	"plantdiary/internal/service"
)

func newPlantCmd(a *app) *cobra.Command {
	plantCmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage plants",
	}

	var (
		keyword string
		page    int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List plants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.plants.List(cmd.Context(), service.PlantQuery{Keyword: keyword, Page: page})
			if err != nil {
				return err
			}
			printPlants(cmd.OutOrStdout(), result)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&keyword, "query", "q", "", "filter by name or description")
	listCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")

	var (
		plantType   string
		plantDate   string
		status      string
		description string
		imageURL    string
	)
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.plants.Create(cmd.Context(), models.Plant{
				Name:        args[0],
				Type:        models.PlantType(plantType),
				PlantDate:   plantDate,
				Status:      models.Status(status),
				Description: description,
				ImageURL:    imageURL,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s (%s)\n", color.GreenString("✓"), created.Name, created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&plantType, "type", "t", string(models.PlantTypeOther), "plant type")
	addCmd.Flags().StringVarP(&plantDate, "date", "d", "", "planting date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&status, "status", "s", "", "health status (default healthy)")
	addCmd.Flags().StringVar(&description, "desc", "", "description, markdown")
	addCmd.Flags().StringVar(&imageURL, "image", "", "image path")

	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a plant and its newest records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.plants.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printPlantDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a plant with its records and reminders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.plants.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", color.GreenString("✓"), args[0])
			return nil
		},
	}

	plantCmd.AddCommand(listCmd, addCmd, showCmd, rmCmd)
	return plantCmd
}

func statusColor(s models.Status) *color.Color {
	switch s {
	case models.StatusHealthy:
		return color.New(color.FgGreen)
	case models.StatusGrowing:
		return color.New(color.FgHiGreen)
	case models.StatusNeedCare:
		return color.New(color.FgYellow)
	case models.StatusDiseased:
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}

func printPlants(out io.Writer, result service.PlantPage) {
	if len(result.Plants) == 0 {
		fmt.Fprintln(out, "No plants found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tPLANTED\tRECORDS")
	for _, p := range result.Plants {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			p.ID, p.Name, p.TypeLabel,
			statusColor(p.Status).Sprint(p.StatusInfo.Label),
			p.PlantDate, p.RecordCount)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nPage %d, %d of %d plants", result.Page, len(result.Plants), result.Total)
	if result.HasMore {
		fmt.Fprintf(out, ", more with --page %d", result.Page+1)
	}
	fmt.Fprintln(out)
}

func printPlantDetail(out io.Writer, d service.PlantDetail) {
	bold := color.New(color.Bold)
	bold.Fprintf(out, "%s %s\n", d.StatusInfo.Icon, d.Name)
	fmt.Fprintf(out, "ID:       %s\n", d.ID)
	fmt.Fprintf(out, "Type:     %s\n", d.TypeLabel)
	fmt.Fprintf(out, "Status:   %s\n", statusColor(d.Status).Sprint(d.StatusInfo.Label))
	fmt.Fprintf(out, "Planted:  %s (%d days)\n", d.PlantDate, d.GrowthDays)
	fmt.Fprintf(out, "Records:  %d\n", d.RecordCount)
	if d.Description != "" {
		fmt.Fprintf(out, "\n%s\n", d.Description)
	}

	if len(d.RecentRecords) == 0 {
		return
	}
	fmt.Fprintln(out)
	bold.Fprintln(out, "Recent records")
	for _, r := range d.RecentRecords {
		fmt.Fprintf(out, "  %s %s  %s  %s\n", r.TypeInfo.Icon, r.TimeText, r.TypeInfo.Label, r.ID)
	}
}
