package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firetower-arcade/lookout/internal/storage"
)

var flagReportLimit int

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show the fire report journal",
	Long: `Display the most recently filed fire reports, newest first.

Every confirmed report is journaled with its azimuth, declination and the
weather at the time it was called in.

Examples:
  lookout reports
  lookout reports --limit 50`,
	Run: runReports,
}

func init() {
	reportsCmd.Flags().IntVar(&flagReportLimit, "limit", 20, "Number of reports to show")
}

func runReports(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	reports, err := store.RecentReports(flagReportLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving reports: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Fire Report Journal")
	fmt.Println()

	if len(reports) == 0 {
		fmt.Println("No reports filed yet.")
		fmt.Println()
		fmt.Println("Play 'lookout play' and call in a fire to start the journal.")
		return
	}

	fmt.Printf("  %-9s  %-12s  %-8s  %-16s  %s\n", "Azimuth", "Declination", "Weather", "Mode", "Filed")
	fmt.Printf("  %-9s  %-12s  %-8s  %-16s  %s\n", "-------", "-----------", "-------", "----", "-----")

	for _, r := range reports {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-9s  %-12s  %-8s  %-16s  %s\n",
			fmt.Sprintf("%.0f°", r.Azimuth),
			fmt.Sprintf("%.0f°", r.Declination),
			r.Weather, r.GameID, dateStr)
	}
}
