// Package cmd implements the fundburn CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fundburn/internal/clock"
	"github.com/theirongolddev/fundburn/internal/config"
	"github.com/theirongolddev/fundburn/internal/format"
	"github.com/theirongolddev/fundburn/internal/fundingprogress"
	"github.com/theirongolddev/fundburn/internal/i18n"
	"github.com/theirongolddev/fundburn/internal/model"
	"github.com/theirongolddev/fundburn/internal/signal"
	"github.com/theirongolddev/fundburn/internal/source"
)

var (
	flagInput   string
	flagNow     string
	flagLocale  string
	flagTZ      string
	flagTicks   int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fundburn",
	Short: "Crowdfunding progress dashboard",
	Long: "Derive the funding dashboard for a project stats file: pledged and goal " +
		"amounts, backers, launch and deadline dates, time remaining and the chart axis.",
	SilenceUsage: true,
	RunE:         runShow,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagInput, "input", "i", "", "Project stats JSON file (- for stdin)")
	pf.StringVar(&flagNow, "now", "", "Evaluate time remaining at this RFC3339 instant")
	pf.StringVarP(&flagLocale, "locale", "l", "", "Locale tag, e.g. de-DE (default from config)")
	pf.StringVar(&flagTZ, "tz", "", "IANA time zone for dates (default from config)")
	pf.IntVar(&flagTicks, "ticks", 0, "Chart y-axis tick count (default from config)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// dashboard is one configured funding view model and everything it emitted.
type dashboard struct {
	cfg       config.Config
	project   model.Project
	formatter *format.Formatter

	backers           *signal.Recorder[string]
	accessibility     *signal.Recorder[string]
	deadline          *signal.Recorder[string]
	goal              *signal.Recorder[string]
	graph             *signal.Recorder[model.GraphData]
	launch            *signal.Recorder[string]
	pledged           *signal.Recorder[string]
	remainingSubtitle *signal.Recorder[string]
	remainingTitle    *signal.Recorder[string]
}

// loadDashboard is the shared path used by all commands that read a
// project: config, input envelope, catalogs, then one Configure call.
func loadDashboard(cmd *cobra.Command) (*dashboard, error) {
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}

	env, err := readEnvelope(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if !env.Project.HasDeadline() {
		return nil, fmt.Errorf("project %d has no deadline", env.Project.ID)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}
	loc := bundle.Localizer(cfg.General.Locale)
	zone, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	opts := []format.Option{
		format.WithLocation(zone),
		format.WithHomeCountry(cfg.General.HomeCountry),
	}
	if flagNow != "" {
		now, err := time.Parse(time.RFC3339, flagNow)
		if err != nil {
			return nil, fmt.Errorf("--now: %w", err)
		}
		opts = append(opts, format.WithClock(clock.Fixed(now)))
	}

	formatter := format.New(loc, opts...)
	vm := fundingprogress.New(formatter, loc,
		fundingprogress.WithTickCount(cfg.Chart.TickCount),
		fundingprogress.WithLogger(logger),
	)
	out := vm.Outputs()
	d := &dashboard{
		cfg:               cfg,
		project:           env.Project,
		formatter:         formatter,
		backers:           signal.Record(out.BackersText),
		accessibility:     signal.Record(out.CellAccessibilityValue),
		deadline:          signal.Record(out.DeadlineDateText),
		goal:              signal.Record(out.GoalText),
		graph:             signal.Record(out.GraphData),
		launch:            signal.Record(out.LaunchDateText),
		pledged:           signal.Record(out.PledgedText),
		remainingSubtitle: signal.Record(out.TimeRemainingSubtitleText),
		remainingTitle:    signal.Record(out.TimeRemainingTitleText),
	}

	logger.Debug("loaded project",
		"project_id", env.Project.ID,
		"locale", loc.Tag().String(),
		"timezone", zone.String(),
	)
	vm.Configure(env.Stats, env.Project)
	return d, nil
}

// effectiveConfig loads the config file and layers command-line flags on top.
func effectiveConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagLocale != "" {
		cfg.General.Locale = flagLocale
	}
	if flagTZ != "" {
		cfg.General.Timezone = flagTZ
	}
	if flagTicks != 0 {
		cfg.Chart.TickCount = flagTicks
	}
	if flagVerbose {
		cfg.General.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func readEnvelope(stdin io.Reader) (*source.Envelope, error) {
	switch flagInput {
	case "":
		return nil, errors.New("no input: pass --input FILE or --input - for stdin")
	case "-":
		return source.Parse(stdin)
	default:
		return source.ParseFile(flagInput)
	}
}

func last[T any](r *signal.Recorder[T]) T {
	v, _ := r.Last()
	return v
}
