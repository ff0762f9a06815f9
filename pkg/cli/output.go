package cli

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func formatFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "format",
		Usage:       "Output format [text|json|yaml]",
		Destination: dst,
		Value:       "text",
	}
}

// writeOutput writes v as JSON or YAML, or calls text for the text format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return goerr.Wrap(err, "failed to write JSON output")
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return goerr.Wrap(err, "failed to write YAML output")
		}
		if err := enc.Close(); err != nil {
			return goerr.Wrap(err, "failed to write YAML output")
		}
	case "text":
		if err := text(w); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	default:
		return goerr.Wrap(types.ErrInvalidOption, "unsupported output format", goerr.V("format", format))
	}
	return nil
}
