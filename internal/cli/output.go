package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/poki/predicate-to-sql/internal/config"
)

// Result is the output of a command.
type Result struct {
	SQL  string `json:"sql"`
	Args []any  `json:"args,omitempty"`
}

// writeResult prints r as a SQL line, followed by an args line when literals
// were bound, or as a single JSON object.
func writeResult(w io.Writer, format string, params bool, r Result) error {
	if format == "json" {
		return encode(w, r)
	}

	if _, err := fmt.Fprintln(w, r.SQL); err != nil {
		return err
	}
	if !params {
		return nil
	}
	args := r.Args
	if args == nil {
		args = []any{}
	}
	if _, err := io.WriteString(w, "args: "); err != nil {
		return err
	}
	return encode(w, args)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// openInput returns the file named by args, or stdin without arguments or
// with "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := config.AppFs.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	return f, nil
}
