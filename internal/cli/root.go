package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/poki/predicate-to-sql/filter"
	"github.com/poki/predicate-to-sql/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config  string
	Dialect string
	Format  string // "json" | "text"
	Verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command of predsql.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "predsql",
		Short: "Compile predicate maps to SQL",
		Long: `Compile predicate documents such as {"age__gte": 18} to SQL conditions,
and request documents to complete SELECT, INSERT, UPDATE and DELETE statements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default .predsql.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Dialect, "dialect", "", "SQL dialect (textual|postgres|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every compiled condition")

	cmd.AddCommand(NewWhereCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}

func (o *RootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.AppFs, o.Config, cmd.Flags())
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if o.Verbose {
		level = slog.LevelDebug
	}

	o.cfg = cfg
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.logger.Debug("configuration loaded", "file", cfg.File, "dialect", cfg.Dialect, "format", cfg.Format)
	return nil
}

func (o *RootOptions) converter() (*filter.Converter, error) {
	options, err := o.cfg.ConverterOptions()
	if err != nil {
		return nil, err
	}
	return filter.NewConverter(append(options, filter.WithLogger(o.logger))...), nil
}
