// main.go - Command line entry point: flags, options file, logging and the TUI program
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	imageBase    string
	theme        string
	allowResize  bool
	defaultOrder string
	excludeAttr  string
	excludeValue string
	excludeMatch string
	configFile   string
	watch        bool
	logFile      string
	logLevel     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "sorttable [file.html]",
		Short:        "Sort grouped HTML tables by clicking their headers",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			closeLog, err := setupLogging(f.logFile, f.logLevel, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return runTUI(args[0], opts, f.watch)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.imageBase, "image-base", "", "Base URL or directory of the sort indicator images")
	pf.StringVar(&f.theme, "theme", DefaultTheme, "Indicator image theme and terminal palette")
	pf.BoolVar(&f.allowResize, "allow-column-resize", false, "Let the sort indicator widen its column")
	pf.StringVar(&f.defaultOrder, "default-order", "asc", "Direction of the first click on a header: asc or desc")
	pf.StringVar(&f.excludeAttr, "exclude-attr", "", "Exclude rows carrying this attribute")
	pf.StringVar(&f.excludeValue, "exclude-value", "", "Only exclude rows whose --exclude-attr has this value")
	pf.StringVar(&f.excludeMatch, "exclude-match", "", "Exclude rows whose first cell matches this regular expression")
	pf.StringVarP(&f.configFile, "config", "c", "", "YAML options file")
	pf.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Reinitialize when the file changes on disk")

	cmd.AddCommand(newRenderCmd(f))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// options builds sorter options from the config file, then overrides them
// with the flags set on the command line.
func (f *rootFlags) options(cmd *cobra.Command) (Options, error) {
	opts := DefaultOptions()
	if f.configFile != "" {
		var err error
		if opts, err = LoadOptionsFile(f.configFile, opts); err != nil {
			return opts, err
		}
		log.Debugf("Loaded options from %s", f.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("image-base") || opts.ImageBase == "" {
		opts.ImageBase = f.imageBase
	}
	if flags.Changed("theme") {
		opts.Theme = f.theme
	}
	if flags.Changed("allow-column-resize") {
		opts.AllowColumnResize = f.allowResize
	}
	if flags.Changed("default-order") {
		order, err := parseSortOrder(f.defaultOrder)
		if err != nil {
			return opts, err
		}
		opts.DefaultSortOrder = order
	}

	rule := ExclusionRule{Attribute: f.excludeAttr, Value: f.excludeValue, TextMatch: f.excludeMatch}
	if !rule.IsZero() {
		pred, err := rule.Predicate()
		if err != nil {
			return opts, err
		}
		opts.RowExclusion = pred
	}
	return opts, nil
}

// setupLogging points logrus at path, or at fallback when path is empty.
func setupLogging(path, level string, fallback io.Writer) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: path != ""})

	if path == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(file)
	return func() { file.Close() }, nil
}

func runTUI(path string, opts Options, watch bool) error {
	p := tea.NewProgram(newRootModel(path, opts, watch), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if m, ok := final.(rootModel); ok && m.watcher != nil {
		m.watcher.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
