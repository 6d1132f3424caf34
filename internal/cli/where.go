package cli

import (
	"github.com/spf13/cobra"

	"github.com/poki/predicate-to-sql/internal/request"
)

// WhereOptions holds flags for the where command.
type WhereOptions struct {
	*RootOptions
	Params bool
	Start  int
}

// NewWhereCommand creates the where command.
func NewWhereCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WhereOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "where [file|-]",
		Short: "Compile a predicate document to a condition group",
		Long: `Compile a YAML or JSON predicate document to a parenthesized condition group.

Keys are field names with an optional operator suffix, e.g. age__gte or
email__startswith. Conditions are written in document order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhere(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Params, "params", false, "bind literals to placeholders")
	cmd.Flags().IntVar(&opts.Start, "start", 1, "index of the first placeholder")

	return cmd
}

func runWhere(opts *WhereOptions, cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	m, err := request.DecodeMap(in)
	if err != nil {
		return err
	}
	c, err := opts.converter()
	if err != nil {
		return err
	}

	var result Result
	if opts.Params {
		result.SQL, result.Args, err = c.ConvertParams(m, opts.Start)
	} else {
		result.SQL, err = c.Convert(m)
	}
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), opts.cfg.Format, opts.Params, result)
}
