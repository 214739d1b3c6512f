package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Print the screen-reader summary of the funding cell",
	RunE:  runNarrate,
}

func init() {
	rootCmd.AddCommand(narrateCmd)
}

func runNarrate(cmd *cobra.Command, _ []string) error {
	d, err := loadDashboard(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), last(d.accessibility))
	return err
}
