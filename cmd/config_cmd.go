package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/fundburn/internal/cli"
	"github.com/theirongolddev/fundburn/internal/config"
	"github.com/theirongolddev/fundburn/internal/i18n"
	"github.com/theirongolddev/fundburn/internal/model"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Run the setup form (writes defaults when stdin is not a terminal)")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	path := config.Path()

	if flagInit {
		var err error
		if isTerminal(cmd.InOrStdin()) {
			err = runSetup(w, path)
		} else {
			err = writeDefaultConfig(w, path)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	fmt.Fprintf(w, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Locale:       %s (matched %s)\n", cfg.General.Locale, bundle.Match(cfg.General.Locale))
	fmt.Fprintf(w, "    Timezone:     %s\n", cfg.General.Timezone)
	fmt.Fprintf(w, "    Home country: %s\n", cfg.General.HomeCountry)
	fmt.Fprintf(w, "    Log level:    %s\n", cfg.General.LogLevel)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Chart]")
	fmt.Fprintf(w, "    Tick count: %d\n", cfg.Chart.TickCount)
	fmt.Fprintf(w, "    Size:       %dx%d\n", cfg.Chart.Width, cfg.Chart.Height)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Locales:   %s\n", strings.Join(bundle.Locales(), ", "))
	fmt.Fprintf(w, "  Countries: %s\n", strings.Join(model.Countries(), ", "))
	return nil
}

// runSetup walks the user through the setup form, prefilled from the
// current config, and saves the answers.
func runSetup(w io.Writer, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	answers := cli.NewSetupAnswers(cfg)
	if err := cli.NewSetupForm(answers, bundle.Locales(), model.Countries()).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(w, "  Setup canceled, config unchanged.")
			return nil
		}
		return err
	}
	if err := answers.Apply(&cfg); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Saved to %s\n", path)
	return nil
}

func writeDefaultConfig(w io.Writer, path string) error {
	if config.Exists(path) {
		fmt.Fprintf(w, "  Config file already exists: %s\n", path)
		return nil
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Wrote default config: %s\n", path)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
