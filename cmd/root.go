package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projtime/projtime/internal/config"
	"github.com/projtime/projtime/internal/report"
	"github.com/projtime/projtime/internal/scan"
	"github.com/projtime/projtime/internal/timecalc"
)

// version is overridden at build time:
// go build -ldflags "-X github.com/projtime/projtime/cmd.version=v1.2.3"
var version = "dev"

var (
	suffix     string
	maxMinutes int64
	format     string
)

var rootCmd = &cobra.Command{
	Use:   "projtime [directory]",
	Short: "Estimate time spent on a project from its saved file snapshots",
	Long: `projtime estimates elapsed working time on a project by inspecting the
creation and modification timestamps of saved project-file snapshots in a
directory. The defaults work for Ableton Live projects (.als files).`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    run,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&suffix, "suffix", "s", config.DefaultSuffix,
		"Project file suffix. Default value works for Ableton projects")
	rootCmd.Flags().Int64VarP(&maxMinutes, "max-minutes-between-saves", "m", config.DefaultMaxMinutes,
		"Maximum number of minutes allowed between saves for time to be counted. Values <= 0 will disable this feature")
	rootCmd.Flags().StringVarP(&format, "format", "f", report.FormatTable,
		"Output format: table, csv, json")
	rootCmd.Flags().BoolP("version", "V", false, "Print version and exit")
}

func run(cmd *cobra.Command, args []string) error {
	renderer, err := report.RendererFor(format)
	if err != nil {
		return err
	}
	// Arguments are valid past this point; pipeline failures should not
	// print usage.
	cmd.SilenceUsage = true

	cfg := config.Config{
		Directory:              config.DefaultDirectory,
		Suffix:                 suffix,
		MaxMinutesBetweenSaves: maxMinutes,
	}
	if len(args) == 1 {
		cfg.Directory = args[0]
	}

	files, err := scan.Dir(cfg.Directory, cfg.Suffix)
	if err != nil {
		return err
	}
	scan.SortByCreation(files)

	rows, total := timecalc.Estimate(files, cfg.MaxMinutesBetweenSaves)
	return renderer(cmd.OutOrStdout(), rows, total)
}
