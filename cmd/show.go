package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fundburn/internal/cli"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Funding summary table (default command)",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	d, err := loadDashboard(cmd)
	if err != nil {
		return err
	}

	title := d.project.Name
	if title == "" {
		title = fmt.Sprintf("Project %d", d.project.ID)
	}

	graph := last(d.graph)
	rows := [][]string{
		{"State", string(d.project.State)},
		{"Pledged", last(d.pledged) + " " + last(d.goal)},
		{"Progress", cli.RenderFundingBar(d.project.Stats.Pledged, d.project.Stats.Goal, 20)},
		{"Backers", last(d.backers)},
		cli.Separator,
		{"Launched", last(d.launch)},
		{"Deadline", last(d.deadline)},
		{"Remaining", last(d.remainingTitle) + " " + last(d.remainingSubtitle)},
		cli.Separator,
		{"Samples", strconv.Itoa(len(graph.Stats))},
		{"Y-axis tick", strconv.FormatFloat(graph.YAxisTickSize, 'f', -1, 64)},
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(strings.ToUpper(title)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", last(d.accessibility))
	return nil
}
