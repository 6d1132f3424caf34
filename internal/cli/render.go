package cli

import (
	"github.com/spf13/cobra"

	"github.com/poki/predicate-to-sql/internal/request"
	"github.com/poki/predicate-to-sql/query"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Params bool
	Start  int
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a request document to a SQL statement",
		Long: `Render a YAML or JSON request document to one SQL statement.

A request names a table and any of: columns, all, get, filter, order_by,
select_related, limit, offset, delete, update and create.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Params, "params", false, "bind literals to placeholders")
	cmd.Flags().IntVar(&opts.Start, "start", 1, "index of the first placeholder")

	return cmd
}

func runRender(opts *RenderOptions, cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	req, err := request.Decode(in)
	if err != nil {
		return err
	}
	c, err := opts.converter()
	if err != nil {
		return err
	}
	b := req.Builder(query.WithConverter(c), query.WithLogger(opts.logger))

	var result Result
	if opts.Params {
		result.SQL, result.Args, err = b.Build(opts.Start)
	} else {
		result.SQL, err = b.Render()
	}
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), opts.cfg.Format, opts.Params, result)
}
