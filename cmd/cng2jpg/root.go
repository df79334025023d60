package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cng2jpg/internal/config"
	"cng2jpg/internal/convert"
	"cng2jpg/internal/logging"
	"cng2jpg/internal/preflight"
)

type runFlags struct {
	src        string
	dst        string
	remove     bool
	merge      bool
	strict     bool
	quality    int
	logLevel   string
	logFormat  string
	progress   bool
	quiet      bool
	configFlag string
}

func newRootCommand() *cobra.Command {
	var flags runFlags

	ctx := newCommandContext(&flags.configFlag)

	rootCmd := &cobra.Command{
		Use:   "cng2jpg --src DIR [--dst DIR] [--remove] [--merge]",
		Short: "Convert CNG page images to JPG",
		Long: `Recursively convert .cng page images into .jpg files.

The source tree is mirrored under the destination (in place when --dst is
omitted). With --merge, each odd right page is joined with the preceding even
left page into one two-page spread, e.g. IMG_01_01_002 + IMG_01_01_003 become
IMG_01_01_002-003.jpg.`,
		Example:       "  cng2jpg --src /run/media/user/CNG_DISC1/disc1/images --dst ~/CNG/discs/images --merge",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runConvert(cmd, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configFlag, "config", "c", "", "Configuration file path")

	f := rootCmd.Flags()
	f.StringVarP(&flags.src, "src", "s", "", "Path to source directory containing files to convert")
	f.StringVarP(&flags.dst, "dst", "d", "", "Destination path (default in-place)")
	f.BoolVarP(&flags.remove, "remove", "r", false, "Remove original cng files after conversion")
	f.BoolVarP(&flags.merge, "merge", "m", false, "Merge double spread pages in a single file")
	f.BoolVar(&flags.strict, "strict", false, "Abort when a page filename does not follow <prefix>_<volume>_<section>_<index>")
	f.IntVar(&flags.quality, "quality", 0, "JPEG quality for merged spreads, 1-100 (default from config)")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	f.BoolVar(&flags.progress, "progress", false, "Show a progress bar instead of per-file log lines (terminal only)")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the summary table")
	_ = rootCmd.MarkFlagRequired("src")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// resolveOptions layers explicitly set flags over configuration defaults.
func resolveOptions(cmd *cobra.Command, cfg *config.Config, flags runFlags) (convert.Options, error) {
	src, err := config.ExpandPath(strings.TrimSpace(flags.src))
	if err != nil {
		return convert.Options{}, fmt.Errorf("resolve --src: %w", err)
	}
	dst, err := config.ExpandPath(strings.TrimSpace(flags.dst))
	if err != nil {
		return convert.Options{}, fmt.Errorf("resolve --dst: %w", err)
	}

	opts := convert.Options{
		Src:         src,
		Dst:         dst,
		Remove:      cfg.Convert.Remove,
		Merge:       cfg.Convert.Merge,
		StrictNames: cfg.Convert.StrictNames,
		JPEGQuality: cfg.Convert.JPEGQuality,
	}
	changed := cmd.Flags().Changed
	if changed("remove") {
		opts.Remove = flags.remove
	}
	if changed("merge") {
		opts.Merge = flags.merge
	}
	if changed("strict") {
		opts.StrictNames = flags.strict
	}
	if changed("quality") {
		if flags.quality < 1 || flags.quality > 100 {
			return convert.Options{}, fmt.Errorf("--quality must be between 1 and 100, got %d", flags.quality)
		}
		opts.JPEGQuality = flags.quality
	}
	return opts, nil
}

func runConvert(cmd *cobra.Command, cfg *config.Config, flags runFlags) error {
	opts, err := resolveOptions(cmd, cfg, flags)
	if err != nil {
		return err
	}

	dst := opts.Dst
	if dst == "" {
		dst = opts.Src
	}
	if err := preflight.Err(preflight.RunAll(opts.Src, dst)); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	showProgress := flags.progress && isTerminal(stderr)

	level := cfg.Logging.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	} else if showProgress {
		level = "warn"
	}
	format := cfg.Logging.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}

	logger, closer, err := logging.New(logging.Options{
		Level:    level,
		Format:   format,
		Writer:   stderr,
		FilePath: cfg.Logging.File,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()

	var obs convert.Observer
	if showProgress {
		obs = newProgressObserver(stderr)
	}

	sum, runErr := convert.NewRunner(logger, obs).Run(cmd.Context(), opts)
	if !flags.quiet && sum.RunID != "" {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(sum, shouldColorize(cmd.OutOrStdout())))
	}
	return runErr
}
