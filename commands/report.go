package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the occupancy and revenue report for a date range as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			startRaw, _ := cmd.Flags().GetString("start")
			endRaw, _ := cmd.Flags().GetString("end")

			today := time.Now().Format(time.DateOnly)
			if startRaw == "" {
				startRaw = today
			}
			if endRaw == "" {
				endRaw = startRaw
			}
			start, err := time.ParseInLocation(time.DateOnly, startRaw, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			end, err := time.ParseInLocation(time.DateOnly, endRaw, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.desk.Report(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().String("start", "", "first day, YYYY-MM-DD (default today)")
	cmd.Flags().String("end", "", "last day, YYYY-MM-DD (default start)")
	return cmd
}
