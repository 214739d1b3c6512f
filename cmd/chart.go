package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fundburn/internal/cli"
)

var (
	flagWidth  int
	flagHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Cumulative pledge chart on the computed y axis",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagWidth, "width", 0, "Chart width in columns (default from config)")
	chartCmd.Flags().IntVar(&flagHeight, "height", 0, "Chart height in rows (default from config)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	d, err := loadDashboard(cmd)
	if err != nil {
		return err
	}

	chart := cli.FundingChart{
		Width:  d.cfg.Chart.Width,
		Height: d.cfg.Chart.Height,
		Label:  d.formatter.ShortDate,
	}
	if flagWidth > 0 {
		chart.Width = flagWidth
	}
	if flagHeight > 0 {
		chart.Height = flagHeight
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n\n", last(d.pledged), last(d.goal))
	fmt.Fprintln(w, chart.Render(last(d.graph)))
	return nil
}
