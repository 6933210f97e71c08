package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/internal/ctxlog"
	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/search"
	"github.com/ccollicutt/minigrep/pkg/source"
)

// SearchOptions holds command-line options for the search command.
type SearchOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Decompress bool
	Help       bool
	Version    bool

	// LookupEnv reads the environment. Defaults to an empty environment
	// when nil.
	LookupEnv config.LookupEnvFunc
}

// NewSearchCommand creates the search command. It is used as the root
// command, so its positional arguments are the query and the file path.
func NewSearchCommand(lookupEnv config.LookupEnvFunc) *cobra.Command {
	opts := &SearchOptions{LookupEnv: lookupEnv}

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <file-path>",
		Short: "Print the lines of a file that contain a query",
		Long: `Print every line of a file that contains the query string.

The query is matched literally, not as a regular expression. Matching lines
are printed unchanged and in file order. Arguments after the file path are
ignored. Flags are only recognized before the query; any other word,
including "-v", "--" or an unknown "-x", is taken as the query.

Environment:
  IGNORE_CASE           When set to any value, match case-insensitively
  MINIGREP_LOG_LEVEL    Log level (debug|info|warn|error)
  MINIGREP_LOG_FORMAT   Log format (text|json)

Exit codes:
  0 - Search completed (with or without matches)
  1 - Missing arguments, unreadable file or invalid configuration`,
		Args: cobra.ArbitraryArgs,
		// Leading flags are split off by runSearch so that unknown
		// dash-prefixed words stay available as queries.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML file with default settings")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "Log format (text|json)")
	cmd.Flags().BoolVarP(&opts.Decompress, "decompress", "z", false, "Decode gzip or zstd compressed files")
	cmd.Flags().BoolVarP(&opts.Help, "help", "h", false, "Show help")
	cmd.Flags().BoolVar(&opts.Version, "version", false, "Print version information")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	flagArgs, args := splitLeadingFlags(cmd.Flags(), args)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if opts.Help {
		return cmd.Help()
	}
	if opts.Version {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "minigrep %s\n", Version)
		return err
	}

	defaults, err := loadDefaults(ctx, cmd, opts)
	if err != nil {
		return err
	}

	logger, err := ctxlog.New(cmd.ErrOrStderr(), defaults.LogLevel, defaults.LogFormat)
	if err != nil {
		return err
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	// Build expects the program name first, which cobra has already removed.
	cfg, err := config.Build(append([]string{cmd.Root().Name()}, args...), opts.LookupEnv)
	if err != nil {
		return fmt.Errorf("parsing arguments: %w", err)
	}
	if defaults.IgnoreCase {
		cfg.IgnoreCase = true
	}
	logger.Debug("configuration built",
		"query", cfg.Query,
		"file", cfg.FilePath,
		"ignore_case", cfg.IgnoreCase)

	contents, err := source.ReadFile(ctx, cfg.FilePath, source.Options{
		Decompress: opts.Decompress || defaults.Decompress,
	})
	if err != nil {
		return err
	}
	logger.Debug("contents read", "file", cfg.FilePath, "bytes", len(contents))

	results := runFilter(ctx, cfg, contents)

	if err := output.WriteLines(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	return nil
}

// runFilter returns the lines of contents that match cfg.
func runFilter(ctx context.Context, cfg config.Config, contents string) []string {
	var results []string
	if cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	} else {
		results = search.Search(cfg.Query, contents)
	}

	ctxlog.FromContext(ctx).Debug("search finished",
		"matches", len(results),
		"ignore_case", cfg.IgnoreCase)

	return results
}

// loadDefaults merges the defaults file, the environment and explicit flags,
// in increasing order of precedence.
func loadDefaults(ctx context.Context, cmd *cobra.Command, opts *SearchOptions) (*config.Defaults, error) {
	defaults := config.DefaultDefaults()
	if opts.ConfigFile != "" {
		loaded, err := config.LoadDefaults(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		defaults = loaded
	}

	defaults.ApplyEnvironment(opts.LookupEnv)

	if cmd.Flags().Changed("log-level") {
		defaults.LogLevel = opts.LogLevel
	}
	if cmd.Flags().Changed("log-format") {
		defaults.LogFormat = opts.LogFormat
	}

	if err := defaults.Validate(); err != nil {
		return nil, err
	}

	return defaults, nil
}
